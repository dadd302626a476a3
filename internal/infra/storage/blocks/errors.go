package blocks

import "errors"

// ErrStore возвращается при ошибках хранилища
var ErrStore = errors.New("blocks.repository: store error")
