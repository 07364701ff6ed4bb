package usecase

import (
	"time"

	"go.uber.org/zap"

	"github.com/focusin/hub/internal/infra/mail"
	"github.com/focusin/hub/internal/registry"
)

// DigestUseCase emails the registry summary plus the exported snapshot
// to the founder inbox.
type DigestUseCase struct {
	Registry *registry.Registry
	Mailer   DigestMailer
	To       string
	Log      *zap.Logger
}

func NewDigestUseCase(reg *registry.Registry, mailer DigestMailer, to string, log *zap.Logger) *DigestUseCase {
	return &DigestUseCase{Registry: reg, Mailer: mailer, To: to, Log: log}
}

func (uc *DigestUseCase) Execute() error {
	if uc.To == "" {
		return &DomainError{Code: "NO_RECIPIENT", Message: "no digest recipient configured"}
	}

	snapshot, err := uc.Registry.Export()
	if err != nil {
		return &TechnicalError{Code: "EXPORT_FAILED", Message: err.Error()}
	}

	stats := uc.Registry.Stats()
	data := mail.DigestData{
		Date:            time.Now().Format("2006-01-02"),
		Total:           stats.Total,
		Pending:         stats.Pending,
		ProgressPercent: stats.ProgressPercent,
	}

	if err := uc.Mailer.SendLeadDigest(uc.To, data, snapshot); err != nil {
		return &TechnicalError{Code: "DIGEST_SEND_FAILED", Message: err.Error()}
	}
	uc.Log.Info("lead digest sent", zap.String("to", uc.To), zap.Int("leads", stats.Total))
	return nil
}
