package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitwit/addrcheck"
	"github.com/vitwit/addrcheck/types"
)

const maxBatchSize = 1000

// BatchRequest is the body of POST /v1/validate/batch.
type BatchRequest struct {
	Requests []types.ValidationRequest `json:"requests"`
}

// BatchResponse holds results in request order.
type BatchResponse struct {
	Results []types.ValidationResult `json:"results"`
}

// NetworksResponse is the body of GET /v1/networks.
type NetworksResponse struct {
	Networks []string `json:"networks"`
}

// DiagnosticResponse is returned by POST /v1/validate when the request asks
// for diagnostics with ?verbose=true.
type DiagnosticResponse struct {
	Result types.ValidationResult `json:"result"`
	Error  *types.AddrError       `json:"error,omitempty"`
}

// ErrorResponse describes a malformed request.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Error:     err.Error(),
		RequestID: getRequestID(c),
	})
}

func (s *Server) handleValidate(c *gin.Context) {
	var req types.ValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if c.Query("verbose") != "true" {
		c.JSON(http.StatusOK, s.validator.Validate(req.Address, req.Network))
		return
	}

	res, err := s.validator.Diagnose(req.Address, req.Network)
	resp := DiagnosticResponse{Result: res}
	var addrErr *types.AddrError
	if errors.As(err, &addrErr) {
		resp.Error = addrErr
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if len(req.Requests) > maxBatchSize {
		s.badRequest(c, fmt.Errorf("batch of %d exceeds limit of %d", len(req.Requests), maxBatchSize))
		return
	}

	results, err := s.validator.BatchValidate(c.Request.Context(), req.Requests)
	if err != nil {
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, ErrorResponse{
			Error:     err.Error(),
			RequestID: getRequestID(c),
		})
		return
	}
	c.JSON(http.StatusOK, BatchResponse{Results: results})
}

func (s *Server) handleNetworks(c *gin.Context) {
	c.JSON(http.StatusOK, NetworksResponse{Networks: s.validator.SupportedNetworks()})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": addrcheck.Version,
		"strict":  s.validator.Strict(),
	})
}
