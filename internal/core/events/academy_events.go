package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypePaymentCompleted = "payment.completed"
	EventTypeStudentEnrolled  = "student.enrolled"
	EventTypeMessageSent      = "message.sent"
)

// PaymentCompletedEvent fires once per verified checkout session, after the
// ledger rows flipped to completed. Items carry the per-row descriptions and
// amounts for the receipt.
type PaymentCompletedEvent struct {
	BaseEvent
	UserID      string        `json:"user_id"`
	UserEmail   string        `json:"user_email"`
	SessionID   string        `json:"session_id"`
	AmountTotal int64         `json:"amount_total"`
	Items       []ReceiptItem `json:"items"`
}

type ReceiptItem struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	PaymentType string `json:"payment_type"`
}

func NewPaymentCompletedEvent(userID, userEmail, sessionID string, amountTotal int64, items []ReceiptItem) *PaymentCompletedEvent {
	return &PaymentCompletedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypePaymentCompleted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"user_id":      userID,
				"session_id":   sessionID,
				"amount_total": amountTotal,
			},
		},
		UserID:      userID,
		UserEmail:   userEmail,
		SessionID:   sessionID,
		AmountTotal: amountTotal,
		Items:       items,
	}
}

type StudentEnrolledEvent struct {
	BaseEvent
	StudentID    string `json:"student_id"`
	StudentEmail string `json:"student_email"`
	CourseID     string `json:"course_id"`
	CourseName   string `json:"course_name"`
}

func NewStudentEnrolledEvent(studentID, studentEmail, courseID, courseName string) *StudentEnrolledEvent {
	return &StudentEnrolledEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeStudentEnrolled,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"student_id": studentID,
				"course_id":  courseID,
			},
		},
		StudentID:    studentID,
		StudentEmail: studentEmail,
		CourseID:     courseID,
		CourseName:   courseName,
	}
}

// MessageSentEvent lets the mail notifier pick up messages whose recipient
// has no live websocket connection.
type MessageSentEvent struct {
	BaseEvent
	MessageID      string `json:"message_id"`
	SenderID       string `json:"sender_id"`
	SenderName     string `json:"sender_name"`
	RecipientID    string `json:"recipient_id"`
	RecipientEmail string `json:"recipient_email"`
	Delivered      bool   `json:"delivered"`
}

func NewMessageSentEvent(messageID, senderID, senderName, recipientID, recipientEmail string, delivered bool) *MessageSentEvent {
	return &MessageSentEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeMessageSent,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"message_id":   messageID,
				"sender_id":    senderID,
				"recipient_id": recipientID,
				"delivered":    delivered,
			},
		},
		MessageID:      messageID,
		SenderID:       senderID,
		SenderName:     senderName,
		RecipientID:    recipientID,
		RecipientEmail: recipientEmail,
		Delivered:      delivered,
	}
}
