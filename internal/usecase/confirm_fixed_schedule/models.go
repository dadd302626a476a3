package confirm_fixed_schedule

import createSession "github.com/m04kA/SMC-StudioService/internal/usecase/create_session"

// Request подтверждение шаблона на ближайший день недели
type Request struct {
	ScheduleID string
}

// Response созданная сессия
type Response = createSession.Response
