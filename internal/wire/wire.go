package wire

import (
	"net/http"

	"truetimeshare/internal/adaptor"
	"truetimeshare/internal/data/repository"
	"truetimeshare/internal/usecase"
	"truetimeshare/pkg/middleware"
	"truetimeshare/pkg/notify"
	"truetimeshare/pkg/token"
	"truetimeshare/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds everything the server needs
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	issuer := token.NewIssuer(
		config.JWT.Access.Secret,
		config.JWT.Refresh.Secret,
		config.JWT.Access.ExpiryHours,
		config.JWT.Refresh.ExpiryHours,
	)

	mailer, sms := buildNotifiers(config, logger)

	service := usecase.NewService(repo, config, issuer, mailer, sms, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, issuer, config, logger)

	return &App{
		Router: router,
	}
}

// buildNotifiers picks the delivery channels. Outside production the
// dev notifiers just log, which keeps local flows observable.
func buildNotifiers(config *utils.Config, logger *zap.Logger) (notify.Mailer, notify.SMSSender) {
	if !config.IsProduction() {
		return notify.NewDevMailer(logger), notify.NewDevSMSSender(logger)
	}

	var mailer notify.Mailer
	if config.Email.MailerSendKey != "" {
		mailer = notify.NewMailerSend(config.Email.MailerSendKey, config.App.Name, config.Email.MailerSendFrom)
	} else {
		mailer = notify.NewSMTPMailer(
			config.Email.Host,
			config.Email.Port,
			config.Email.From,
			config.Email.User,
			config.Email.Password,
		)
	}

	sms := notify.NewTwilioSender(
		config.Twilio.AccountSID,
		config.Twilio.AuthToken,
		config.Twilio.PhoneNumber,
	)

	return mailer, sms
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	issuer *token.Issuer,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.Frontend))

	wireAuth(r, handler.Auth, issuer, logger)
	wireProperty(r, handler.Property, issuer, logger)
	wireCommunity(r, handler.Community)
	wireAdmin(r, handler, issuer, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
