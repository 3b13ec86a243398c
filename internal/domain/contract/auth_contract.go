package contract

type LoginBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type RegisterBody struct {
	Email           string `json:"email" binding:"required,email"`
	Name            string `json:"name" binding:"required,min=1,max=100"`
	PhoneNumber     string `json:"phoneNumber" binding:"omitempty,phone"`
	Password        string `json:"password" binding:"required,pwd"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
	Code            string `json:"code" binding:"required,otp"`
}

type SendOTPType string

const (
	OTPRegister       SendOTPType = "REGISTER"
	OTPForgotPassword SendOTPType = "FORGOT_PASSWORD"
)

type SendOTPBody struct {
	Email string      `json:"email" binding:"required,email"`
	Type  SendOTPType `json:"type" binding:"required,oneof=REGISTER FORGOT_PASSWORD"`
}

type ForgotPasswordBody struct {
	Email              string `json:"email" binding:"required,email"`
	Code               string `json:"code" binding:"required,otp"`
	NewPassword        string `json:"newPassword" binding:"required,pwd"`
	ConfirmNewPassword string `json:"confirmNewPassword" binding:"required,eqfield=NewPassword"`
}

type ChangePasswordBody struct {
	Password           string `json:"password" binding:"required,pwd"`
	NewPassword        string `json:"newPassword" binding:"required,pwd"`
	ConfirmNewPassword string `json:"confirmNewPassword" binding:"required,eqfield=NewPassword"`
}

type UpdateMeBody struct {
	Name           string `json:"name" binding:"required,min=1,max=100"`
	PhoneNumber    string `json:"phoneNumber" binding:"omitempty,phone"`
	Avatar         string `json:"avatar" binding:"omitempty,url"`
	RestaurantName string `json:"restaurantName" binding:"omitempty,max=200"`
	Address        string `json:"address" binding:"omitempty,max=500"`
}
