package proposal

import (
	"log/slog"

	"sahabat3t-backend/internal/global/logger"
)

var log *slog.Logger

type ModuleProposal struct{}

func (p *ModuleProposal) GetName() string {
	return "Proposal"
}

func (p *ModuleProposal) Init() {
	log = logger.New("Proposal")
}
