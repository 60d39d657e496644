package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processStartSessionReq binds the optional start session body.
func (h *handler) processStartSessionReq(c *gin.Context) (startSessionReq, error) {
	var req startSessionReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, errInvalidBody
	}
	return req, nil
}

// processListSessionsReq binds the session listing query parameters.
func (h *handler) processListSessionsReq(c *gin.Context) (listSessionsReq, error) {
	var req listSessionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidQuery
	}
	return req, nil
}

// processSendMessageReq binds the send message body. Message validation is left
// to the use case so that every caller gets the same rules.
func (h *handler) processSendMessageReq(c *gin.Context) (sendMessageReq, error) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}

// processUpdateAttributesReq binds the attributes body and the URI param.
func (h *handler) processUpdateAttributesReq(c *gin.Context) (updateAttributesReq, error) {
	var req updateAttributesReq
	id, err := h.processSessionID(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	req.SessionID = id
	return req, nil
}

func (h *handler) processSessionID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errMissingSessionID
	}
	return id, nil
}
