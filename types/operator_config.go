package types

// OperatorConfig stores the per-operator settings used when issuing passes
// and sending notifications.
type OperatorConfig struct {
	ID           string `json:"-" gorm:"primary_key"`
	PassTitle    string `json:"passTitle"`
	NotifyNumber string `json:"notifyNumber"`
	EmailFrom    string `json:"emailFrom"`
	EmailName    string `json:"emailName"`
	EmailContent string `json:"emailContent"`
	SendSMS      bool   `json:"sendSMS" gorm:"default:false"`
	TermsConds   string `json:"terms"`
	StripeKey    string `json:"-"`
}
