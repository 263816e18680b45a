package cmd

import (
	"log/slog"
	"strconv"
	"time"

	"gorm.io/gorm"

	httpadapter "staffing/internal/adapters/in/http"
	"staffing/internal/adapters/out/mail"
	"staffing/internal/adapters/out/pdf"
	"staffing/internal/adapters/out/postgres"
	"staffing/internal/adapters/out/postgres/counterrepo"
	"staffing/internal/core/application/usecases/commands"
	"staffing/internal/core/application/usecases/queries"
	"staffing/internal/core/ports"
	"staffing/internal/pkg/tokens"
)

// tokenTTL is the lifetime of issued access tokens.
const tokenTTL = time.Hour

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	sequences   ports.SequenceGenerator
	renderer    ports.CheckoutRenderer
	mailer      ports.Mailer
	broadcaster ports.Broadcaster
	otpStore    ports.OTPStore
	issuer      *tokens.Issuer
	logger      *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	broadcaster ports.Broadcaster,
	otpStore ports.OTPStore,
	logger *slog.Logger,
) (CompositionRoot, error) {
	issuer, err := tokens.NewIssuer(config.JWTSecret, tokenTTL)
	if err != nil {
		return CompositionRoot{}, err
	}

	smtpPort, err := strconv.Atoi(config.SMTPPort)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		sequences:   counterrepo.NewGormSequenceGenerator(gormDB),
		renderer:    pdf.NewRenderer(config.TempDir, logger),
		mailer:      mail.NewSMTPMailer(config.SMTPHost, smtpPort, config.SMTPUser, config.SMTPPassword, config.MailFrom),
		broadcaster: broadcaster,
		otpStore:    otpStore,
		issuer:      issuer,
		logger:      logger,
	}, nil
}

func (c *CompositionRoot) jobPostUoWFactory() commands.JobPostUoWFactory {
	return FuncJobPostUoWFactory(func() commands.JobPostUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) checkoutDelivery() commands.CheckoutDelivery {
	return commands.NewCheckoutDelivery(c.deliveryUoWFactory(), c.renderer, c.mailer, c.logger)
}

func (c *CompositionRoot) CreateCreateJobPostCommandHandler() commands.CreateJobPostCommandHandler {
	return commands.NewCreateJobPostCommandHandler(c.jobPostUoWFactory(), c.sequences, c.broadcaster, c.logger)
}

func (c *CompositionRoot) CreateUpdateJobPostCommandHandler() commands.UpdateJobPostCommandHandler {
	return commands.NewUpdateJobPostCommandHandler(c.jobPostUoWFactory())
}

func (c *CompositionRoot) CreateDeleteJobPostCommandHandler() commands.DeleteJobPostCommandHandler {
	return commands.NewDeleteJobPostCommandHandler(c.jobPostUoWFactory())
}

func (c *CompositionRoot) CreateAcceptJobPostCommandHandler() commands.AcceptJobPostCommandHandler {
	return commands.NewAcceptJobPostCommandHandler(c.jobPostUoWFactory())
}

func (c *CompositionRoot) CreateCheckInJobPostCommandHandler() commands.CheckInJobPostCommandHandler {
	return commands.NewCheckInJobPostCommandHandler(c.jobPostUoWFactory())
}

func (c *CompositionRoot) CreateCheckOutJobPostCommandHandler() commands.CheckOutJobPostCommandHandler {
	return commands.NewCheckOutJobPostCommandHandler(c.jobPostUoWFactory(), c.checkoutDelivery(), c.logger)
}

func (c *CompositionRoot) CreateRetryPendingDeliveriesCommandHandler() commands.RetryPendingDeliveriesCommandHandler {
	return commands.NewRetryPendingDeliveriesCommandHandler(c.deliveryUoWFactory(), c.checkoutDelivery(), c.logger)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f, c.otpStore, c.mailer, c.logger)
}

func (c *CompositionRoot) CreateVerifyOTPCommandHandler() commands.VerifyOTPCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyOTPCommandHandler(f, c.otpStore)
}

func (c *CompositionRoot) CreateSendMessageCommandHandler() commands.SendMessageCommandHandler {
	var f commands.MessageUoWFactory = FuncMessageUoWFactory(func() commands.MessageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendMessageCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() commands.UpdateProfileCommandHandler {
	var f commands.ProfileUoWFactory = FuncProfileUoWFactory(func() commands.ProfileUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateGetJobPostsQueryHandler() queries.GetJobPostsQueryHandler {
	return queries.NewGetJobPostsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobPostQueryHandler() queries.GetJobPostQueryHandler {
	return queries.NewGetJobPostQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUpcomingJobPostsQueryHandler() queries.GetUpcomingJobPostsQueryHandler {
	return queries.NewGetUpcomingJobPostsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobPostsByDateQueryHandler() queries.GetJobPostsByDateQueryHandler {
	return queries.NewGetJobPostsByDateQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobDatesStatusesQueryHandler() queries.GetJobDatesStatusesQueryHandler {
	return queries.NewGetJobDatesStatusesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTemplatesByNameQueryHandler() queries.GetTemplatesByNameQueryHandler {
	return queries.NewGetTemplatesByNameQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateLoginQueryHandler() queries.LoginQueryHandler {
	return queries.NewLoginQueryHandler(c.gormDB, c.issuer)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProfileQueryHandler() queries.GetProfileQueryHandler {
	return queries.NewGetProfileQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMessagesQueryHandler() queries.GetMessagesQueryHandler {
	return queries.NewGetMessagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.gormDB)
}

// CreateServer assembles the HTTP server with every handler wired.
func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.ServerDeps{
		CreateJobPost: c.CreateCreateJobPostCommandHandler(),
		UpdateJobPost: c.CreateUpdateJobPostCommandHandler(),
		DeleteJobPost: c.CreateDeleteJobPostCommandHandler(),
		AcceptJobPost: c.CreateAcceptJobPostCommandHandler(),
		CheckIn:       c.CreateCheckInJobPostCommandHandler(),
		CheckOut:      c.CreateCheckOutJobPostCommandHandler(),
		Register:      c.CreateRegisterUserCommandHandler(),
		VerifyOTP:     c.CreateVerifyOTPCommandHandler(),
		SendMessage:   c.CreateSendMessageCommandHandler(),
		UpdateProfile: c.CreateUpdateProfileCommandHandler(),

		GetJobPosts:         c.CreateGetJobPostsQueryHandler(),
		GetJobPost:          c.CreateGetJobPostQueryHandler(),
		GetUpcoming:         c.CreateGetUpcomingJobPostsQueryHandler(),
		GetJobPostsByDate:   c.CreateGetJobPostsByDateQueryHandler(),
		GetJobDatesStatuses: c.CreateGetJobDatesStatusesQueryHandler(),
		GetTemplatesByName:  c.CreateGetTemplatesByNameQueryHandler(),
		Login:               c.CreateLoginQueryHandler(),
		GetProfile:          c.CreateGetProfileQueryHandler(),
		GetMessages:         c.CreateGetMessagesQueryHandler(),
		GetNotifications:    c.CreateGetNotificationsQueryHandler(),

		Auth: httpadapter.NewAuthMiddleware(c.issuer, c.CreateGetUserQueryHandler()),
	})
}

type FuncJobPostUoWFactory func() commands.JobPostUoW

func (f FuncJobPostUoWFactory) Create() commands.JobPostUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncMessageUoWFactory func() commands.MessageUoW

func (f FuncMessageUoWFactory) Create() commands.MessageUoW {
	return f()
}

type FuncProfileUoWFactory func() commands.ProfileUoW

func (f FuncProfileUoWFactory) Create() commands.ProfileUoW {
	return f()
}
