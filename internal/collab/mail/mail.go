// Package mail wraps the confirmation-mail transport and the content checks
// applied to outgoing messages before they are handed to it.
package mail

import (
	"context"
	"strings"
	"time"

	"surveygate/internal/intake"
)

// Message is the outgoing confirmation mail.
type Message struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Receipt acknowledges an accepted send.
type Receipt struct {
	MessageID string    `json:"messageId"`
	SentAt    time.Time `json:"sentAt"`
}

// Client is the mail transport boundary.
type Client interface {
	Send(ctx context.Context, to string, msg Message) (Receipt, error)
}

// Keyword sets the body must reference, OR-matched as plain substrings.
// Locale-specific; overridable through config.
func DefaultCompanyKeywords() []string {
	return []string{"LIFESUPPORT", "会社名", "住所", "電話", "FAX"}
}

func DefaultContactKeywords() []string {
	return []string{"電話", "FAX", "メール", "ウェブサイト"}
}

// ContentReport is the outcome of validating a message's content.
type ContentReport struct {
	Valid          bool     `json:"isValid"`
	HasSubject     bool     `json:"hasSubject"`
	HasBody        bool     `json:"hasBody"`
	HasCompanyInfo bool     `json:"hasCompanyInfo"`
	HasContactInfo bool     `json:"hasContactInfo"`
	Issues         []string `json:"issues,omitempty"`
}

// ValidateContent checks the message has a subject, a body, and that the
// body mentions at least one company-info and one contact-info keyword.
func ValidateContent(msg Message, companyKeywords, contactKeywords []string) ContentReport {
	report := ContentReport{Valid: true}

	if !intake.Blank(msg.Subject) {
		report.HasSubject = true
	} else {
		report.Issues = append(report.Issues, "件名が設定されていません")
		report.Valid = false
	}

	if !intake.Blank(msg.Body) {
		report.HasBody = true
	} else {
		report.Issues = append(report.Issues, "本文が設定されていません")
		report.Valid = false
	}

	if containsAny(msg.Body, companyKeywords) {
		report.HasCompanyInfo = true
	} else {
		report.Issues = append(report.Issues, "会社情報が含まれていません")
		report.Valid = false
	}

	if containsAny(msg.Body, contactKeywords) {
		report.HasContactInfo = true
	} else {
		report.Issues = append(report.Issues, "連絡先情報が含まれていません")
		report.Valid = false
	}

	return report
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// ConfirmationTemplate is the canned completion notice sent after a
// successful intake run.
func ConfirmationTemplate() Message {
	return Message{
		Subject: "【LIFESUPPORT】アンケート回答完了のお知らせ",
		Body: strings.TrimSpace(`
お客様

この度は、LIFESUPPORT(HK)LIMITEDのアンケートにご回答いただき、誠にありがとうございました。

【会社情報】
会社名: LIFESUPPORT(HK)LIMITED
住所: No 163 Pan Chung, Tai Po, N.T.,HK
電話: (852)52263586
FAX: (852)26530426
ウェブサイト: https://lshk-ai-service.studio.site/

【回答内容の確認】
お客様のご回答は正常に受信され、データベースに安全に保存されました。
ご提供いただいた情報は、サービス向上のために活用させていただきます。

【今後の対応】
・回答データの分析結果は、後日メールにてお送りいたします
・ご質問やご不明な点がございましたら、上記連絡先までお気軽にお問い合わせください

今後ともLIFESUPPORT(HK)LIMITEDをよろしくお願いいたします。

LIFESUPPORT(HK)LIMITED
代表取締役`),
	}
}
