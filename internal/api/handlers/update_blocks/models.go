package update_blocks

import "github.com/m04kA/SMC-StudioService/internal/service/blocks"

// UpdateBlocksRequest HTTP request model
type UpdateBlocksRequest struct {
	Intervals []blocks.Interval `json:"intervals"` // пустой список снимает все блокировки дня
}
