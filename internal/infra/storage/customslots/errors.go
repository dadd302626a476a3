package customslots

import "errors"

// ErrStore возвращается при ошибках хранилища
var ErrStore = errors.New("customslots.repository: store error")
