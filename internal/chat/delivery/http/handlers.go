package http

import (
	"github.com/gin-gonic/gin"

	"preinscription-chatbot/pkg/response"
)

// StartSession godoc
// @Summary     Start a chat session
// @Description Opens a new conversation and returns its session id.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body startSessionReq false "Optional owner"
// @Success     200  {object} sessionResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions [POST]
func (h *handler) StartSession(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStartSessionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sess, err := h.uc.StartSession(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.StartSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(sess))
}

// ListSessions godoc
// @Summary     List the sessions of a user
// @Description Returns the stored sessions of a user with their message count, most recently active first.
// @Tags        Chat
// @Produce     json
// @Param       user_id query string true  "Owner of the sessions"
// @Param       limit   query int    false "Page size (default: 50)"
// @Param       offset  query int    false "Page offset (default: 0)"
// @Success     200 {object} listSessionsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions [GET]
func (h *handler) ListSessions(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListSessionsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListSessions(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ListSessions: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListSessionsResp(output))
}

// SendMessage godoc
// @Summary     Send a message to the assistant
// @Description Answers one visitor message. A session is created when session_id is omitted.
// @Description The reply falls back to a canned answer when the model is unavailable.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendMessageReq true "Message"
// @Success     200  {object} sendMessageResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     413  {object} response.Resp "Message too long"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SendMessage(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.SendMessage: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSendMessageResp(output))
}

// History godoc
// @Summary     Get the messages of a session
// @Description Returns the stored messages of a session in chronological order.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions/{id}/messages [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.History(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// Summary godoc
// @Summary     Get the context summary of a session
// @Description Returns message counts, the last detected intent and the user attributes.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} summaryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions/{id}/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Summary(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Summary: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSummaryResp(output))
}

// UpdateAttributes godoc
// @Summary     Merge user attributes
// @Description Merges the given attributes into the session context. Existing keys are overwritten.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id   path string              true "Session ID"
// @Param       body body updateAttributesReq true "Attributes"
// @Success     200 {object} summaryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions/{id}/attributes [PUT]
func (h *handler) UpdateAttributes(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateAttributesReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateAttributes(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.UpdateAttributes: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSummaryResp(output))
}

// DeleteSession godoc
// @Summary     Delete a session
// @Description Removes the stored messages and the in-memory context of a session.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions/{id} [DELETE]
func (h *handler) DeleteSession(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.DeleteSession(ctx, id); err != nil {
		h.l.Warnf(ctx, "uc.DeleteSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
