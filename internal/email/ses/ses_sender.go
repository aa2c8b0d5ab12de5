package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"gstbook/internal/domain"
	"gstbook/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendFilingAcknowledgement(ctx context.Context, toEmail string, doc *domain.ReturnDocument) error {
	subject := fmt.Sprintf("GSTR-3B filed for period %s", doc.Period)
	htmlBody := buildAcknowledgementHTML(doc)
	textBody := fmt.Sprintf(
		"Your GSTR-3B return for GSTIN %s, period %s, has been filed.\n\nAcknowledgement number: %s\nAcknowledgement date: %s\n\nKeep this number for your records.",
		doc.BasicInfo.GSTIN, doc.Period, doc.BasicInfo.ARN, doc.BasicInfo.AckDate,
	)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildAcknowledgementHTML(doc *domain.ReturnDocument) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">GSTR-3B filed</h2>
  <p>The return for GSTIN <strong>%s</strong>, period <strong>%s</strong>, has been filed successfully.</p>
  <table style="border-collapse: collapse; margin: 20px 0;">
    <tr><td style="padding: 6px 12px; color: #666;">Acknowledgement number</td><td style="padding: 6px 12px;"><strong>%s</strong></td></tr>
    <tr><td style="padding: 6px 12px; color: #666;">Acknowledgement date</td><td style="padding: 6px 12px;">%s</td></tr>
    <tr><td style="padding: 6px 12px; color: #666;">Legal name</td><td style="padding: 6px 12px;">%s</td></tr>
  </table>
  <p style="color: #999; font-size: 12px;">Keep the acknowledgement number for your records.</p>
</body>
</html>`, doc.BasicInfo.GSTIN, doc.Period, doc.BasicInfo.ARN, doc.BasicInfo.AckDate, doc.BasicInfo.LegalName)
}
