package mail

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateContent(t *testing.T) {
	company := DefaultCompanyKeywords()
	contact := DefaultContactKeywords()

	t.Run("confirmation template passes every check", func(t *testing.T) {
		report := ValidateContent(ConfirmationTemplate(), company, contact)

		assert.True(t, report.Valid)
		assert.True(t, report.HasSubject)
		assert.True(t, report.HasBody)
		assert.True(t, report.HasCompanyInfo)
		assert.True(t, report.HasContactInfo)
		assert.Empty(t, report.Issues)
	})

	t.Run("blank subject", func(t *testing.T) {
		msg := ConfirmationTemplate()
		msg.Subject = "  "
		report := ValidateContent(msg, company, contact)

		assert.False(t, report.Valid)
		assert.False(t, report.HasSubject)
		assert.Contains(t, report.Issues, "件名が設定されていません")
	})

	t.Run("body without any keyword fails both info checks", func(t *testing.T) {
		msg := Message{Subject: "お知らせ", Body: "ご回答ありがとうございました。"}
		report := ValidateContent(msg, company, contact)

		assert.False(t, report.Valid)
		assert.False(t, report.HasCompanyInfo)
		assert.False(t, report.HasContactInfo)
		assert.Equal(t, []string{"会社情報が含まれていません", "連絡先情報が含まれていません"}, report.Issues)
	})

	t.Run("empty message collects every issue", func(t *testing.T) {
		report := ValidateContent(Message{}, company, contact)

		assert.False(t, report.Valid)
		assert.Len(t, report.Issues, 4)
	})

	t.Run("one keyword per set is enough", func(t *testing.T) {
		msg := Message{Subject: "件名", Body: "会社名と電話を記載"}
		report := ValidateContent(msg, company, contact)
		assert.True(t, report.Valid)
	})
}

func TestConfirmationTemplate(t *testing.T) {
	msg := ConfirmationTemplate()
	assert.Contains(t, msg.Subject, "LIFESUPPORT")
	assert.Contains(t, msg.Body, "LIFESUPPORT(HK)LIMITED")
	assert.False(t, strings.HasPrefix(msg.Body, "\n"), "template body must be trimmed")
}

func TestMockClientSend(t *testing.T) {
	client := &MockClient{}
	msg := ConfirmationTemplate()

	receipt, err := client.Send(context.Background(), "test@example.com", msg)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(receipt.MessageID, "msg_"))
	assert.False(t, receipt.SentAt.IsZero())

	sent := client.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "test@example.com", sent[0].To)
	assert.Equal(t, receipt.MessageID, sent[0].MessageID)
	assert.Equal(t, msg, sent[0].Message)
}

func TestMockClientError(t *testing.T) {
	boom := errors.New("mail transport down")
	client := &MockClient{Err: boom}

	_, err := client.Send(context.Background(), "test@example.com", Message{})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, client.Sent())
}
