package school

import (
	"log/slog"

	"sahabat3t-backend/internal/global/logger"
)

var log *slog.Logger

type ModuleSchool struct{}

func (s *ModuleSchool) GetName() string {
	return "School"
}

func (s *ModuleSchool) Init() {
	log = logger.New("School")
}
