package mailer

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/atelieraurum/studio-api/common"
)

type SendGridConfig struct {
	APIKey       string `json:"api_key"`
	BaseURL      string `json:"base_url"`
	MailSendPath string `json:"mail_send_path"`

	// <orders@atelier-aurum.com>
	OrdersEmail string `json:"orders_email"`
	OrdersName  string `json:"orders_name"`
	// <noreply@atelier-aurum.com>
	NoReplyEmail string `json:"no_reply_email"`
	NoReplyName  string `json:"no_reply_name"`
	// <studio@atelier-aurum.com>
	StudioEmail string `json:"studio_email"`
	StudioName  string `json:"studio_name"`

	// Dynamic templates IDs
	DynamicTemplates DynamicTemplates `json:"dynamic_templates"`
}

type DynamicTemplates struct {
	OrderConfirmation   string `json:"order_confirmation"`
	OrderShipped        string `json:"order_shipped"`
	OrderDigest         string `json:"order_digest"`
	BookingConfirmation string `json:"booking_confirmation"`
	MembershipWelcome   string `json:"membership_welcome"`
	MembershipCanceled  string `json:"membership_canceled"`
	SimpleNotification  string `json:"simple_notification"`
}

const (
	CategoryOrders      string = "orders"
	CategoryBookings    string = "bookings"
	CategoryMemberships string = "memberships"
	CategoryDigest      string = "digest"
)

// SimpleNotification : Simple notification template data
type SimpleNotification struct {
	Subject    string
	Preheader  string
	Body       string
	CCs        []string
	BCCs       []string
	TemplateID string
	Categories []string
}

// Config : Sendgrid configuration
var Config SendGridConfig

func init() {
	raw := common.GetEnv("SENDGRID_CONFIG", "")
	if raw == "" {
		// local and test runs go through the coward mailer, a missing
		// config must not take the process down
		Config = SendGridConfig{
			BaseURL:      "https://api.sendgrid.com",
			MailSendPath: "/v3/mail/send",
			NoReplyEmail: "noreply@atelier-aurum.com",
			NoReplyName:  "Atelier Aurum",
		}

		return
	}

	if err := json.Unmarshal([]byte(raw), &Config); err != nil {
		log.Fatalln(err)
	}

	if key := os.Getenv("SENDGRID_API_KEY"); key != "" {
		Config.APIKey = key
	}
}

func SendEmailWithTemplate(sn *SimpleNotification, params map[string]interface{}, email string) error {
	m := mail.NewV3Mail()
	m.SetTemplateID(sn.TemplateID)
	m.SetFrom(mail.NewEmail(Config.NoReplyName, Config.NoReplyEmail))

	enable := false
	m.SetTrackingSettings(&mail.TrackingSettings{SubscriptionTracking: &mail.SubscriptionTrackingSetting{Enable: &enable}})
	m.AddCategories(sn.Categories...)

	personalization := mail.NewPersonalization()
	tos := []*mail.Email{
		mail.NewEmail("", email),
	}
	personalization.AddTos(tos...)

	if len(sn.CCs) > 0 {
		ccs := make([]*mail.Email, 0)

		for _, cc := range sn.CCs {
			if cc != email {
				ccs = append(ccs, mail.NewEmail("", cc))
			}
		}

		if len(ccs) > 0 {
			personalization.AddCCs(ccs...)
		}
	}

	if len(sn.BCCs) > 0 {
		bccs := make([]*mail.Email, 0)

		for _, bcc := range sn.BCCs {
			if bcc != email {
				bccs = append(bccs, mail.NewEmail("", bcc))
			}
		}

		if len(bccs) > 0 {
			personalization.AddBCCs(bccs...)
		}
	}

	personalization.SetDynamicTemplateData("subject", sn.Subject)
	personalization.SetDynamicTemplateData("preheader", sn.Preheader)

	for key, param := range params {
		personalization.SetDynamicTemplateData(key, param)
	}

	m.AddPersonalizations(personalization)

	request := sendgrid.GetRequest(Config.APIKey, Config.MailSendPath, Config.BaseURL)
	request.Method = http.MethodPost
	request.Body = mail.GetRequestBody(m)

	response, err := sendgrid.MakeRequestRetry(request)
	if err != nil {
		return err
	}

	if response.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid responded with status %d: %s", response.StatusCode, response.Body)
	}

	return nil
}

//go:generate mockery --name NotificationSender --output ./mocks
type NotificationSender interface {
	SendNotification(sn *SimpleNotification, to string, params map[string]interface{}) error
}

type Mailer struct {
}

func NewMailer() Mailer {
	return Mailer{}
}

func (Mailer) SendNotification(sn *SimpleNotification, to string, params map[string]interface{}) error {
	err := SendEmailWithTemplate(sn, params, to)
	if err != nil {
		return err
	}

	return nil
}

// CowardMailer logs instead of sending, used for local development and tests.
type CowardMailer struct{}

func (CowardMailer) SendNotification(sn *SimpleNotification, to string, params map[string]interface{}) error {
	marshaledNotification, err := json.Marshal(sn)
	if err != nil {
		return err
	}

	marshaledParams, err := json.Marshal(params)
	if err != nil {
		return err
	}

	fmt.Printf("Coward mailer not sending to %s, %s, with params: %s\n", to, string(marshaledNotification), string(marshaledParams))

	return nil
}

// ForEnvironment returns the real mailer in production and the coward mailer
// everywhere else.
func ForEnvironment() NotificationSender {
	if common.Production {
		return NewMailer()
	}

	return CowardMailer{}
}
