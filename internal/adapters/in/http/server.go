// Package http exposes the application's use cases over a REST API.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"staffing/internal/core/application/usecases/commands"
	"staffing/internal/core/application/usecases/queries"
	"staffing/internal/core/domain/model/jobpost"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/core/domain/model/user"
	"staffing/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createJobPostHandler commands.CreateJobPostCommandHandler
	updateJobPostHandler commands.UpdateJobPostCommandHandler
	deleteJobPostHandler commands.DeleteJobPostCommandHandler
	acceptJobPostHandler commands.AcceptJobPostCommandHandler
	checkInHandler       commands.CheckInJobPostCommandHandler
	checkOutHandler      commands.CheckOutJobPostCommandHandler
	registerHandler      commands.RegisterUserCommandHandler
	verifyOTPHandler     commands.VerifyOTPCommandHandler
	sendMessageHandler   commands.SendMessageCommandHandler
	updateProfileHandler commands.UpdateProfileCommandHandler

	// Query handlers
	getJobPostsHandler         queries.GetJobPostsQueryHandler
	getJobPostHandler          queries.GetJobPostQueryHandler
	getUpcomingHandler         queries.GetUpcomingJobPostsQueryHandler
	getJobPostsByDateHandler   queries.GetJobPostsByDateQueryHandler
	getJobDatesStatusesHandler queries.GetJobDatesStatusesQueryHandler
	getTemplatesByNameHandler  queries.GetTemplatesByNameQueryHandler
	loginHandler               queries.LoginQueryHandler
	getProfileHandler          queries.GetProfileQueryHandler
	getMessagesHandler         queries.GetMessagesQueryHandler
	getNotificationsHandler    queries.GetNotificationsQueryHandler

	auth *AuthMiddleware
}

// ServerDeps bundles the handlers the server routes to.
type ServerDeps struct {
	CreateJobPost commands.CreateJobPostCommandHandler
	UpdateJobPost commands.UpdateJobPostCommandHandler
	DeleteJobPost commands.DeleteJobPostCommandHandler
	AcceptJobPost commands.AcceptJobPostCommandHandler
	CheckIn       commands.CheckInJobPostCommandHandler
	CheckOut      commands.CheckOutJobPostCommandHandler
	Register      commands.RegisterUserCommandHandler
	VerifyOTP     commands.VerifyOTPCommandHandler
	SendMessage   commands.SendMessageCommandHandler
	UpdateProfile commands.UpdateProfileCommandHandler

	GetJobPosts         queries.GetJobPostsQueryHandler
	GetJobPost          queries.GetJobPostQueryHandler
	GetUpcoming         queries.GetUpcomingJobPostsQueryHandler
	GetJobPostsByDate   queries.GetJobPostsByDateQueryHandler
	GetJobDatesStatuses queries.GetJobDatesStatusesQueryHandler
	GetTemplatesByName  queries.GetTemplatesByNameQueryHandler
	Login               queries.LoginQueryHandler
	GetProfile          queries.GetProfileQueryHandler
	GetMessages         queries.GetMessagesQueryHandler
	GetNotifications    queries.GetNotificationsQueryHandler

	Auth *AuthMiddleware
}

// NewServer creates the HTTP server from its handler dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		createJobPostHandler: deps.CreateJobPost,
		updateJobPostHandler: deps.UpdateJobPost,
		deleteJobPostHandler: deps.DeleteJobPost,
		acceptJobPostHandler: deps.AcceptJobPost,
		checkInHandler:       deps.CheckIn,
		checkOutHandler:      deps.CheckOut,
		registerHandler:      deps.Register,
		verifyOTPHandler:     deps.VerifyOTP,
		sendMessageHandler:   deps.SendMessage,
		updateProfileHandler: deps.UpdateProfile,

		getJobPostsHandler:         deps.GetJobPosts,
		getJobPostHandler:          deps.GetJobPost,
		getUpcomingHandler:         deps.GetUpcoming,
		getJobPostsByDateHandler:   deps.GetJobPostsByDate,
		getJobDatesStatusesHandler: deps.GetJobDatesStatuses,
		getTemplatesByNameHandler:  deps.GetTemplatesByName,
		loginHandler:               deps.Login,
		getProfileHandler:          deps.GetProfile,
		getMessagesHandler:         deps.GetMessages,
		getNotificationsHandler:    deps.GetNotifications,

		auth: deps.Auth,
	}
}

// RegisterRoutes wires every route onto the echo instance. Route paths are
// part of the client contract and keep their original casing.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()
	e.Use(metricsMiddleware)

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	jobPosts := api.Group("/jobPosts")
	jobPosts.POST("", s.CreateJobPost, s.auth.Authenticate)
	jobPosts.GET("", s.GetJobPosts)
	jobPosts.GET("/upcoming", s.GetUpcomingJobPosts)
	jobPosts.GET("/job-dates-statuses", s.GetJobDatesStatuses)
	jobPosts.GET("/date/:date", s.GetJobPostsByDate)
	jobPosts.GET("/template/:templateName", s.GetTemplatesByName)
	jobPosts.GET("/templates/:id", s.GetJobPost)
	jobPosts.GET("/:id", s.GetJobPost)
	jobPosts.PUT("/accept/:id", s.AcceptJobPost, s.auth.Authenticate)
	jobPosts.PUT("/checkIn/:id", s.CheckInJobPost, s.auth.Authenticate)
	jobPosts.PUT("/checkout/:id", s.CheckOutJobPost, s.auth.Authenticate)
	jobPosts.PUT("/:id", s.UpdateJobPost)
	jobPosts.DELETE("/:id", s.DeleteJobPost)

	auth := api.Group("/auth")
	auth.POST("/register", s.Register)
	auth.POST("/verify-otp", s.VerifyOTP)
	auth.POST("/login", s.Login)
	auth.GET("/profile", s.GetAuthProfile, s.auth.Authenticate)

	profile := api.Group("/profile", s.auth.Authenticate)
	profile.GET("/me", s.GetProfile)
	profile.PUT("/me", s.UpdateProfile)

	api.POST("/messages", s.SendMessage, s.auth.Authenticate)
	api.GET("/messages/:receiverId", s.GetMessages, s.auth.Authenticate)
	api.GET("/notifications", s.GetNotifications, s.auth.Authenticate)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateJobPost handles POST /api/jobPosts.
func (s *Server) CreateJobPost(ctx echo.Context) error {
	var request createJobPostRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{Message: "Invalid request body"})
	}

	cmd, err := commands.NewCreateJobPostCommand(
		kernel.NewUUID(),
		currentUser(ctx).ID,
		detailsFromRequest(request),
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	post, err := s.createJobPostHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	jobTransitionsTotal.WithLabelValues("posted").Inc()
	return ctx.JSON(http.StatusCreated, fromDomainJobPost(post))
}

// GetJobPosts handles GET /api/jobPosts?isTemplate=<bool>.
func (s *Server) GetJobPosts(ctx echo.Context) error {
	isTemplate := ctx.QueryParam("isTemplate") == "true"

	query := queries.NewGetJobPostsQuery(isTemplate)
	posts, err := s.getJobPostsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toJobPostResponses(posts))
}

// GetJobPost handles GET /api/jobPosts/:id and GET /api/jobPosts/templates/:id.
func (s *Server) GetJobPost(ctx echo.Context) error {
	jobPostID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{Message: "Invalid job post id"})
	}

	query, err := queries.NewGetJobPostQuery(jobPostID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	post, err := s.getJobPostHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toJobPostResponse(post))
}

// GetUpcomingJobPosts handles GET /api/jobPosts/upcoming.
func (s *Server) GetUpcomingJobPosts(ctx echo.Context) error {
	query := queries.NewGetUpcomingJobPostsQuery()
	posts, err := s.getUpcomingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toJobPostResponses(posts))
}

// GetJobDatesStatuses handles GET /api/jobPosts/job-dates-statuses.
func (s *Server) GetJobDatesStatuses(ctx echo.Context) error {
	query := queries.NewGetJobDatesStatusesQuery()
	entries, err := s.getJobDatesStatusesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toJobDateStatusResponses(entries))
}

// GetJobPostsByDate handles GET /api/jobPosts/date/:date.
func (s *Server) GetJobPostsByDate(ctx echo.Context) error {
	query, err := queries.NewGetJobPostsByDateQuery(ctx.Param("date"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	posts, err := s.getJobPostsByDateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toJobPostResponses(posts))
}

// GetTemplatesByName handles GET /api/jobPosts/template/:templateName.
func (s *Server) GetTemplatesByName(ctx echo.Context) error {
	query, err := queries.NewGetTemplatesByNameQuery(ctx.Param("templateName"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	templates, err := s.getTemplatesByNameHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toJobPostResponses(templates))
}

// UpdateJobPost handles PUT /api/jobPosts/:id.
func (s *Server) UpdateJobPost(ctx echo.Context) error {
	jobPostID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{Message: "Invalid job post id"})
	}

	var request updateJobPostRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{Message: "Invalid request body"})
	}

	var status *jobpost.Status
	if request.Status != "" {
		parsed, statusErr := jobpost.StatusFromString(request.Status)
		if statusErr != nil {
			return ctx.JSON(http.StatusBadRequest, errorBody{Message: "Invalid status"})
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateJobPostCommand(jobPostID, detailsFromRequest(request.createJobPostRequest), status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	post, err := s.updateJobPostHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromDomainJobPost(post))
}

// DeleteJobPost handles DELETE /api/jobPosts/:id.
func (s *Server) DeleteJobPost(ctx echo.Context) error {
	jobPostID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{Message: "Invalid job post id"})
	}

	cmd, err := commands.NewDeleteJobPostCommand(jobPostID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.deleteJobPostHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "Job post deleted successfully"})
}

// AcceptJobPost handles PUT /api/jobPosts/accept/:id.
func (s *Server) AcceptJobPost(ctx echo.Context) error {
	jobPostID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{Message: "Invalid job post id"})
	}

	cmd, err := commands.NewAcceptJobPostCommand(jobPostID, currentUser(ctx).ID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	post, err := s.acceptJobPostHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		var conflict *errs.StatusConflictError
		if errors.As(err, &conflict) {
			return ctx.JSON(http.StatusBadRequest, errorBody{Message: "Job already accepted or completed"})
		}
		return s.writeError(ctx, err)
	}

	jobTransitionsTotal.WithLabelValues("accepted").Inc()
	return ctx.JSON(http.StatusOK, fromDomainJobPost(post))
}

// CheckInJobPost handles PUT /api/jobPosts/checkIn/:id.
func (s *Server) CheckInJobPost(ctx echo.Context) error {
	jobPostID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{Message: "Invalid job post id"})
	}

	cmd, err := commands.NewCheckInJobPostCommand(jobPostID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	post, err := s.checkInHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		var conflict *errs.StatusConflictError
		if errors.As(err, &conflict) {
			return ctx.JSON(http.StatusBadRequest, errorBody{Message: "Job not in upcoming status"})
		}
		return s.writeError(ctx, err)
	}

	jobTransitionsTotal.WithLabelValues("checked_in").Inc()
	return ctx.JSON(http.StatusOK, fromDomainJobPost(post))
}

// CheckOutJobPost handles PUT /api/jobPosts/checkout/:id. A delivery failure
// after the checkout committed reports an error, but the post stays
// completed and the sweep retries the report.
func (s *Server) CheckOutJobPost(ctx echo.Context) error {
	jobPostID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{Message: "Invalid job post id"})
	}

	var request checkoutRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{Message: "Invalid request body"})
	}

	cmd, err := commands.NewCheckOutJobPostCommand(jobPostID, currentUser(ctx).Name, jobpost.CheckoutDetails{
		Signature:     request.Signature,
		Notes:         request.CheckoutInput,
		PatientWeight: request.PatientWeight,
		Temperature:   request.Temperature,
		BloodPressure: request.BloodPressure,
		ContactNumber: request.ContactNumber,
	})
	if err != nil {
		return s.writeError(ctx, err)
	}

	post, err := s.checkOutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAdminRecipientMissing):
			checkoutDeliveriesTotal.WithLabelValues("failed").Inc()
			return ctx.JSON(http.StatusInternalServerError, errorBody{Message: "Admin user not found"})
		case errors.Is(err, commands.ErrReportDeliveryFailed):
			checkoutDeliveriesTotal.WithLabelValues("failed").Inc()
			return ctx.JSON(http.StatusInternalServerError, errorBody{Message: "Failed to send email"})
		}
		return s.writeError(ctx, err)
	}

	jobTransitionsTotal.WithLabelValues("checked_out").Inc()
	checkoutDeliveriesTotal.WithLabelValues("delivered").Inc()
	return ctx.JSON(http.StatusOK, fromDomainJobPost(post))
}

// Register handles POST /api/auth/register.
func (s *Server) Register(ctx echo.Context) error {
	var request registerRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{Message: "Invalid request body"})
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterUserCommand(request.Name, request.Email, request.Password, request.ConfirmPassword, request.Role)
	if err != nil {
		return s.writeError(ctx, err)
	}

	account, err := s.registerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrEmailAlreadyRegistered) {
			return ctx.JSON(http.StatusBadRequest, errorBody{Message: "User already exists"})
		}
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, fromDomainUser(account))
}

// VerifyOTP handles POST /api/auth/verify-otp.
func (s *Server) VerifyOTP(ctx echo.Context) error {
	var request verifyOTPRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{Message: "Invalid request body"})
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	cmd, err := commands.NewVerifyOTPCommand(request.Email, request.OTP)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.verifyOTPHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, commands.ErrOTPMismatch) {
			return ctx.JSON(http.StatusBadRequest, errorBody{Message: "Invalid or expired OTP"})
		}
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "Account verified"})
}

// Login handles POST /api/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var request loginRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{Message: "Invalid request body"})
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	query, err := queries.NewLoginQuery(request.Email, request.Password)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.loginHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCredentials) {
			return ctx.JSON(http.StatusBadRequest, errorBody{Message: "Invalid credentials"})
		}
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loginResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}

// GetAuthProfile handles GET /api/auth/profile.
func (s *Server) GetAuthProfile(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, toUserResponse(currentUser(ctx)))
}

// GetProfile handles GET /api/profile/me.
func (s *Server) GetProfile(ctx echo.Context) error {
	query, err := queries.NewGetProfileQuery(currentUser(ctx).ID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	profile, err := s.getProfileHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProfileResponse(profile))
}

// UpdateProfile handles PUT /api/profile/me.
func (s *Server) UpdateProfile(ctx echo.Context) error {
	var request updateProfileRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{Message: "Invalid request body"})
	}

	cmd, err := commands.NewUpdateProfileCommand(currentUser(ctx).ID, user.Profile{
		Address:        request.Address,
		City:           request.City,
		Pincode:        request.Pincode,
		Phone:          request.Phone,
		Qualifications: request.Qualifications,
		Skills:         request.Skills,
		IDOptions:      request.IDOptions,
	})
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.updateProfileHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "Profile updated"})
}

// SendMessage handles POST /api/messages.
func (s *Server) SendMessage(ctx echo.Context) error {
	var request sendMessageRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{Message: "Invalid request body"})
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	receiverID, err := kernel.UUIDFromString(request.ReceiverID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{Message: "Invalid receiver id"})
	}

	cmd, err := commands.NewSendMessageCommand(currentUser(ctx).ID, receiverID, request.Body)
	if err != nil {
		return s.writeError(ctx, err)
	}

	msg, err := s.sendMessageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, fromDomainMessage(msg))
}

// GetMessages handles GET /api/messages/:receiverId. It returns the
// conversation between the caller and the other user in both directions.
func (s *Server) GetMessages(ctx echo.Context) error {
	receiverID, err := kernel.UUIDFromString(ctx.Param("receiverId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{Message: "Invalid receiver id"})
	}

	query, err := queries.NewGetMessagesQuery(currentUser(ctx).ID, receiverID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	messages, err := s.getMessagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMessageResponses(messages))
}

// GetNotifications handles GET /api/notifications.
func (s *Server) GetNotifications(ctx echo.Context) error {
	query, err := queries.NewGetNotificationsQuery(currentUser(ctx).ID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	notifications, err := s.getNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toNotificationResponses(notifications))
}

func detailsFromRequest(request createJobPostRequest) jobpost.Details {
	return jobpost.Details{
		Date:         request.Date,
		Shift:        request.Shift,
		Location:     request.Location,
		StartTime:    request.Starttime,
		EndTime:      request.Endtime,
		Description:  request.JobDescription,
		Payment:      request.Payment,
		TemplateName: request.TemplateName,
		IsTemplate:   request.IsTemplate,
	}
}

// writeError maps application errors onto the response taxonomy. Anything
// unrecognized becomes a generic 500.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	var conflict *errs.StatusConflictError

	switch {
	case errors.As(err, &notFound):
		return ctx.JSON(http.StatusNotFound, errorBody{Message: "Not found"})
	case errors.As(err, &conflict):
		return ctx.JSON(http.StatusBadRequest, errorBody{Message: err.Error()})
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, errorBody{Message: err.Error()})
	}

	return ctx.JSON(http.StatusInternalServerError, errorBody{Message: "Server error"})
}
