package http

// Job post bodies keep the capitalized field names the mobile and web
// clients already send; changing them would break every deployed client.

type createJobPostRequest struct {
	Date           string `json:"Date"`
	Shift          string `json:"Shift"`
	Location       string `json:"Location"`
	Starttime      string `json:"Starttime"`
	Endtime        string `json:"Endtime"`
	JobDescription string `json:"JobDescription"`
	Payment        string `json:"Payment"`
	TemplateName   string `json:"TemplateName"`
	IsTemplate     bool   `json:"isTemplate"`
}

type updateJobPostRequest struct {
	createJobPostRequest
	Status string `json:"status"`
}

type checkoutRequest struct {
	Signature     string `json:"signature"`
	CheckoutInput string `json:"checkoutInput"`
	PatientWeight string `json:"patientWeight"`
	Temperature   string `json:"temperature"`
	BloodPressure string `json:"bloodPressure"`
	ContactNumber string `json:"contactNumber"`
}

type registerRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	Role            string `json:"role" validate:"omitempty,oneof=admin user"`
}

type verifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=4"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Address        string `json:"address"`
	City           string `json:"city"`
	Pincode        string `json:"pincode"`
	Phone          string `json:"phone"`
	Qualifications string `json:"qualifications"`
	Skills         string `json:"skills"`
	IDOptions      string `json:"idOptions"`
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiverId" validate:"required,uuid"`
	Body       string `json:"body" validate:"required"`
}
