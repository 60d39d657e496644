package http

import (
	"preinscription-chatbot/internal/chat"
	"preinscription-chatbot/pkg/response"
)

// --- Request DTOs ---

type startSessionReq struct {
	UserID string `json:"user_id" binding:"max=128"`
}

func (r startSessionReq) toInput() chat.StartSessionInput {
	return chat.StartSessionInput{UserID: r.UserID}
}

// ---

type listSessionsReq struct {
	UserID string `form:"user_id"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listSessionsReq) toInput() chat.ListSessionsInput {
	return chat.ListSessionsInput{
		UserID: r.UserID,
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

// ---

type sendMessageReq struct {
	Message     string `json:"message"`
	SessionID   string `json:"session_id"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name" binding:"max=100"`
}

func (r sendMessageReq) toInput() chat.SendMessageInput {
	return chat.SendMessageInput{
		SessionID:   r.SessionID,
		UserID:      r.UserID,
		Message:     r.Message,
		DisplayName: r.DisplayName,
	}
}

// ---

type updateAttributesReq struct {
	SessionID  string         `json:"-"` // populated from URI param
	Attributes map[string]any `json:"attributes"`
}

func (r updateAttributesReq) toInput() chat.UpdateAttributesInput {
	return chat.UpdateAttributesInput{
		SessionID:  r.SessionID,
		Attributes: r.Attributes,
	}
}

// --- Response DTOs ---

type sessionResp struct {
	SessionID    string            `json:"session_id"`
	UserID       string            `json:"user_id,omitempty"`
	CreatedAt    response.DateTime `json:"created_at"`
	LastActivity response.DateTime `json:"last_activity"`
}

func newSessionResp(sess chat.Session) sessionResp {
	return sessionResp{
		SessionID:    sess.SessionID,
		UserID:       sess.UserID,
		CreatedAt:    response.DateTime(sess.CreatedAt),
		LastActivity: response.DateTime(sess.LastActivity),
	}
}

// ---

type sessionListItemResp struct {
	sessionResp
	MessageCount int `json:"message_count"`
}

type listSessionsResp struct {
	Sessions []sessionListItemResp `json:"sessions"`
	Count    int                   `json:"count"`
}

func (h *handler) newListSessionsResp(o chat.ListSessionsOutput) listSessionsResp {
	items := make([]sessionListItemResp, 0, len(o.Sessions))
	for _, it := range o.Sessions {
		items = append(items, sessionListItemResp{
			sessionResp:  newSessionResp(it.Session),
			MessageCount: it.MessageCount,
		})
	}
	return listSessionsResp{Sessions: items, Count: len(items)}
}

// ---

type sendMessageResp struct {
	Response  string            `json:"response"`
	SessionID string            `json:"session_id"`
	Intent    string            `json:"intent"`
	Fallback  bool              `json:"fallback"`
	Timestamp response.DateTime `json:"timestamp"`
}

func (h *handler) newSendMessageResp(o chat.SendMessageOutput) sendMessageResp {
	return sendMessageResp{
		Response:  o.Response,
		SessionID: o.SessionID,
		Intent:    string(o.Intent),
		Fallback:  o.Fallback,
		Timestamp: response.DateTime(o.Timestamp),
	}
}

// ---

type messageResp struct {
	ID        int64             `json:"id"`
	Role      string            `json:"role"`
	Content   string            `json:"content"`
	Timestamp response.DateTime `json:"timestamp"`
	Metadata  map[string]any    `json:"metadata,omitempty"`
}

type historyResp struct {
	Session  sessionResp   `json:"session"`
	Messages []messageResp `json:"messages"`
}

func (h *handler) newHistoryResp(o chat.HistoryOutput) historyResp {
	msgs := make([]messageResp, 0, len(o.Messages))
	for _, m := range o.Messages {
		msgs = append(msgs, messageResp{
			ID:        m.ID,
			Role:      string(m.Role),
			Content:   m.Content,
			Timestamp: response.DateTime(m.Timestamp),
			Metadata:  m.Metadata,
		})
	}
	return historyResp{
		Session:  newSessionResp(o.Session),
		Messages: msgs,
	}
}

// ---

type summaryResp struct {
	SessionID      string             `json:"session_id"`
	MessageCount   int                `json:"message_count"`
	StoredMessages int                `json:"stored_messages"`
	LastIntent     string             `json:"last_intent,omitempty"`
	Attributes     map[string]any     `json:"user_attributes"`
	CreatedAt      response.DateTime  `json:"created_at"`
	LastActivity   *response.DateTime `json:"last_activity,omitempty"`
}

func (h *handler) newSummaryResp(o chat.SummaryOutput) summaryResp {
	resp := summaryResp{
		SessionID:      o.SessionID,
		MessageCount:   o.MessageCount,
		StoredMessages: o.StoredMessages,
		LastIntent:     string(o.LastIntent),
		Attributes:     o.Attributes,
		CreatedAt:      response.DateTime(o.CreatedAt),
	}
	if resp.Attributes == nil {
		resp.Attributes = map[string]any{}
	}
	if !o.LastActivity.IsZero() {
		la := response.DateTime(o.LastActivity)
		resp.LastActivity = &la
	}
	return resp
}
