package handlers

import (
	"net/http"

	"solar-sizer/internal/strategy"

	"github.com/gin-gonic/gin"
)

type strategyInfo struct {
	Priority    string `json:"priority"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// StrategyHandler lists the ranking strategies and their scoring weights.
type StrategyHandler struct {
	params strategy.Params
}

func NewStrategyHandler(params strategy.Params) *StrategyHandler {
	return &StrategyHandler{params: params}
}

// ListStrategies handles GET /api/v1/strategies
func (h *StrategyHandler) ListStrategies(c *gin.Context) {
	all := strategy.All(h.params)
	out := make([]strategyInfo, 0, len(all))
	for _, s := range all {
		out = append(out, strategyInfo{
			Priority:    string(s.Priority()),
			Label:       s.Label(),
			Description: s.Description(),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"strategies":              out,
		"premium_inverter_brands": h.params.PremiumInverterBrands,
	})
}
