package http

import (
	"time"

	"staffing/internal/core/application/usecases/queries"
	"staffing/internal/core/domain/model/jobpost"
	"staffing/internal/core/domain/model/message"
	"staffing/internal/core/domain/model/user"
)

// errorBody is the error envelope for every non-2xx response.
type errorBody struct {
	Message string `json:"message"`
}

// jobPostResponse mirrors the wire names established by the original
// clients. "user" carries the poster, "checkoutInput" the free-text
// checkout comments.
type jobPostResponse struct {
	ID             string     `json:"id"`
	CRID           string     `json:"CRID"`
	User           string     `json:"user"`
	Date           string     `json:"Date"`
	Shift          string     `json:"Shift"`
	Location       string     `json:"Location"`
	Starttime      string     `json:"Starttime"`
	Endtime        string     `json:"Endtime"`
	JobDescription string     `json:"JobDescription"`
	Payment        string     `json:"Payment"`
	TemplateName   string     `json:"TemplateName"`
	IsTemplate     bool       `json:"isTemplate"`
	Status         string     `json:"status"`
	AssignedTo     *string    `json:"assignedTo"`
	CheckInTime    *time.Time `json:"checkInTime"`
	CheckedOutTime *time.Time `json:"checkedOutTime"`
	CheckedOut     bool       `json:"checkedOut"`
	PerformedBy    string     `json:"performedBy"`
	Signature      string     `json:"signature"`
	CheckoutInput  string     `json:"checkoutInput"`
	PatientWeight  string     `json:"patientWeight"`
	Temperature    string     `json:"temperature"`
	BloodPressure  string     `json:"bloodPressure"`
	ContactNumber  string     `json:"contactNumber"`
	DeliveryStatus string     `json:"deliveryStatus"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func toJobPostResponse(post queries.JobPostResponse) jobPostResponse {
	response := jobPostResponse{
		ID:             post.ID.String(),
		CRID:           post.CRID,
		User:           post.PosterID.String(),
		Date:           post.Date,
		Shift:          post.Shift,
		Location:       post.Location,
		Starttime:      post.StartTime,
		Endtime:        post.EndTime,
		JobDescription: post.Description,
		Payment:        post.Payment,
		TemplateName:   post.TemplateName,
		IsTemplate:     post.IsTemplate,
		Status:         post.Status,
		CheckInTime:    post.CheckInTime,
		CheckedOutTime: post.CheckedOutTime,
		CheckedOut:     post.CheckedOut,
		PerformedBy:    post.PerformedBy,
		Signature:      post.Signature,
		CheckoutInput:  post.Notes,
		PatientWeight:  post.PatientWeight,
		Temperature:    post.Temperature,
		BloodPressure:  post.BloodPressure,
		ContactNumber:  post.ContactNumber,
		DeliveryStatus: post.DeliveryStatus,
		CreatedAt:      post.CreatedAt,
	}

	if post.AssignedTo != nil {
		worker := post.AssignedTo.String()
		response.AssignedTo = &worker
	}

	return response
}

func toJobPostResponses(posts []queries.JobPostResponse) []jobPostResponse {
	responses := make([]jobPostResponse, len(posts))
	for i, post := range posts {
		responses[i] = toJobPostResponse(post)
	}
	return responses
}

// fromDomainJobPost serializes a freshly mutated aggregate so write
// endpoints can answer with the updated record without a follow-up read.
func fromDomainJobPost(post *jobpost.JobPost) jobPostResponse {
	details := post.Details()
	checkout := post.Checkout()

	response := jobPostResponse{
		ID:             post.ID().String(),
		CRID:           post.CRID(),
		User:           post.Poster().String(),
		Date:           details.Date,
		Shift:          details.Shift,
		Location:       details.Location,
		Starttime:      details.StartTime,
		Endtime:        details.EndTime,
		JobDescription: details.Description,
		Payment:        details.Payment,
		TemplateName:   details.TemplateName,
		IsTemplate:     details.IsTemplate,
		Status:         post.Status().String(),
		CheckInTime:    post.CheckInTime(),
		CheckedOutTime: post.CheckedOutTime(),
		CheckedOut:     post.CheckedOut(),
		PerformedBy:    checkout.PerformedBy,
		Signature:      checkout.Signature,
		CheckoutInput:  checkout.Notes,
		PatientWeight:  checkout.PatientWeight,
		Temperature:    checkout.Temperature,
		BloodPressure:  checkout.BloodPressure,
		ContactNumber:  checkout.ContactNumber,
		DeliveryStatus: post.Delivery().String(),
		CreatedAt:      post.CreatedAt(),
	}

	if workerID := post.AssignedTo(); workerID != nil {
		worker := workerID.String()
		response.AssignedTo = &worker
	}

	return response
}

type jobDateStatusResponse struct {
	ID     string `json:"id"`
	Date   string `json:"Date"`
	Status string `json:"status"`
}

func toJobDateStatusResponses(rows []queries.JobDateStatusResponse) []jobDateStatusResponse {
	responses := make([]jobDateStatusResponse, len(rows))
	for i, row := range rows {
		responses[i] = jobDateStatusResponse{
			ID:     row.ID.String(),
			Date:   row.Date,
			Status: row.Status,
		}
	}
	return responses
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(account queries.UserResponse) userResponse {
	return userResponse{
		ID:        account.ID.String(),
		Name:      account.Name,
		Email:     account.Email,
		Role:      account.Role,
		Verified:  account.Verified,
		CreatedAt: account.CreatedAt,
	}
}

func fromDomainUser(account *user.User) userResponse {
	return userResponse{
		ID:        account.ID.String(),
		Name:      account.Name,
		Email:     account.Email,
		Role:      string(account.Role),
		Verified:  account.Verified,
		CreatedAt: account.CreatedAt,
	}
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type profileResponse struct {
	UserID         string `json:"userId"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Pincode        string `json:"pincode"`
	Phone          string `json:"phone"`
	Qualifications string `json:"qualifications"`
	Skills         string `json:"skills"`
	IDOptions      string `json:"idOptions"`
}

func toProfileResponse(profile queries.ProfileResponse) profileResponse {
	return profileResponse{
		UserID:         profile.UserID.String(),
		Address:        profile.Address,
		City:           profile.City,
		Pincode:        profile.Pincode,
		Phone:          profile.Phone,
		Qualifications: profile.Qualifications,
		Skills:         profile.Skills,
		IDOptions:      profile.IDOptions,
	}
}

type messageResponse struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Body       string    `json:"body"`
	SentAt     time.Time `json:"sentAt"`
}

func toMessageResponses(messages []queries.MessageResponse) []messageResponse {
	responses := make([]messageResponse, len(messages))
	for i, msg := range messages {
		responses[i] = messageResponse{
			ID:         msg.ID.String(),
			SenderID:   msg.Sender.String(),
			ReceiverID: msg.Receiver.String(),
			Body:       msg.Body,
			SentAt:     msg.SentAt,
		}
	}
	return responses
}

func fromDomainMessage(msg *message.Message) messageResponse {
	return messageResponse{
		ID:         msg.ID.String(),
		SenderID:   msg.Sender.String(),
		ReceiverID: msg.Receiver.String(),
		Body:       msg.Body,
		SentAt:     msg.SentAt,
	}
}

type notificationResponse struct {
	ID     string    `json:"id"`
	UserID string    `json:"userId"`
	Title  string    `json:"title"`
	Body   string    `json:"body"`
	Date   time.Time `json:"date"`
}

func toNotificationResponses(notifications []queries.NotificationResponse) []notificationResponse {
	responses := make([]notificationResponse, len(notifications))
	for i, note := range notifications {
		responses[i] = notificationResponse{
			ID:     note.ID.String(),
			UserID: note.UserID.String(),
			Title:  note.Title,
			Body:   note.Body,
			Date:   note.Date,
		}
	}
	return responses
}
