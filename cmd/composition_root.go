package cmd

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/geo"
	"dispatch/internal/adapters/out/notify"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	geocoder   ports.Geocoder
	notifier   ports.AssignmentNotifier
	matcher    services.CourierMatcher
	logger     *slog.Logger
}

// NewCompositionRoot wires the outbound adapters from config. The Telegram
// and SMTP channels are optional; an unset token or host leaves that channel
// out of the notification fan-out.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	geocoder, err := geo.NewHTTPGeocoder(config.GeocoderBaseURL)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("construct geocoder: %w", err)
	}

	var messenger ports.Messenger
	if config.TelegramToken != "" {
		telegramMessenger, err := notify.NewTelegramMessenger(config.TelegramToken)
		if err != nil {
			return CompositionRoot{}, fmt.Errorf("construct telegram messenger: %w", err)
		}
		messenger = telegramMessenger
	}

	var mailer ports.Mailer
	if config.SMTPHost != "" {
		smtpMailer, err := notify.NewSMTPMailer(
			config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword, config.SMTPFrom)
		if err != nil {
			return CompositionRoot{}, fmt.Errorf("construct mailer: %w", err)
		}
		mailer = smtpMailer
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		geocoder:   geocoder,
		notifier:   notify.NewDispatcher(geocoder, messenger, mailer, logger),
		matcher:    services.NewCourierMatcher(),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrderCommandHandler(f, c.geocoder, c.matcher, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkPickedUpCommandHandler() commands.MarkPickedUpCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkPickedUpCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreatePostChatMessageCommandHandler() commands.PostChatMessageCommandHandler {
	var f commands.ChatUoWFactory = FuncChatUoWFactory(func() commands.ChatUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPostChatMessageCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterCourierCommandHandler() commands.RegisterCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCourierLocationCommandHandler() commands.UpdateCourierLocationCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCourierLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateRebroadcastPendingOrdersCommandHandler() commands.RebroadcastPendingOrdersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRebroadcastPendingOrdersCommandHandler(f, c.matcher, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateGetAvailableOrdersQueryHandler() queries.GetAvailableOrdersQueryHandler {
	return queries.NewGetAvailableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignedOrdersQueryHandler() queries.GetAssignedOrdersQueryHandler {
	return queries.NewGetAssignedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetChatMessagesQueryHandler() queries.GetChatMessagesQueryHandler {
	return queries.NewGetChatMessagesQueryHandler(c.gormDB)
}

// CreateServer assembles the HTTP server over every handler.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateAssignOrderCommandHandler(),
		c.CreateAcceptOrderCommandHandler(),
		c.CreateMarkPickedUpCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreatePostChatMessageCommandHandler(),
		c.CreateRegisterCourierCommandHandler(),
		c.CreateUpdateCourierLocationCommandHandler(),
		c.CreateGetAvailableOrdersQueryHandler(),
		c.CreateGetAssignedOrdersQueryHandler(),
		c.CreateGetChatMessagesQueryHandler(),
	)
}

// CreateJobManager assembles the background job scheduler.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRebroadcastPendingOrdersCommandHandler(), c.logger)
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncChatUoWFactory func() commands.ChatUoW

func (f FuncChatUoWFactory) Create() commands.ChatUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
