// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// checkTimeout は依存先1件あたりの確認時間の上限です。
const checkTimeout = 2 * time.Second

// Check はヘルスチェックで確認する依存先です。
// Required が false の依存先は失敗しても "degraded" として200を返します。
type Check struct {
	Name     string
	Ping     func(ctx context.Context) error
	Required bool
}

// HealthResponse は /healthz のレスポンスです。
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// NewHealth は /healthz エンドポイントのハンドラーを返します。
// GET では各依存先を確認し、必須の依存先が失敗した場合は503を返します。
// HEAD と OPTIONS は依存先を確認せずに応答します。
func NewHealth(checks ...Check) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
			return
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
			return
		}

		res := HealthResponse{Status: "ok"}
		code := http.StatusOK
		for _, chk := range checks {
			if res.Checks == nil {
				res.Checks = make(map[string]string, len(checks))
			}
			ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
			err := chk.Ping(ctx)
			cancel()

			if err == nil {
				res.Checks[chk.Name] = "ok"
				continue
			}
			res.Checks[chk.Name] = err.Error()
			if chk.Required {
				res.Status = "unavailable"
				code = http.StatusServiceUnavailable
			} else if res.Status == "ok" {
				res.Status = "degraded"
			}
		}
		c.JSON(code, res)
	}
}
