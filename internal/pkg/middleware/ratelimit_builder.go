// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package middleware

import (
	"fmt"
	"net/http"

	"github.com/ecodeclub/studyhub/internal/pkg/limiter"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// RateLimitBuilder 按调用方 IP 对单个路由类别限流。
// 写路径的准入控制：超出阈值的请求直接拒绝，不会触达底层逻辑。
type RateLimitBuilder struct {
	limiter limiter.Limiter
	// 路由类别，比如 submission、upload
	routeClass string
	logger     *elog.Component
}

func NewRateLimitBuilder(l limiter.Limiter, routeClass string) *RateLimitBuilder {
	return &RateLimitBuilder{
		limiter:    l,
		routeClass: routeClass,
		logger:     elog.DefaultLogger,
	}
}

func (b *RateLimitBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := fmt.Sprintf("studyhub:limiter:%s:%s", b.routeClass, ctx.ClientIP())
		limited, err := b.limiter.Limit(ctx.Request.Context(), key)
		if err != nil {
			// Redis 不可用时放行，限流是保护手段而不是正确性保证
			b.logger.Error("限流器异常",
				elog.String("routeClass", b.routeClass),
				elog.FieldErr(err))
			return
		}
		if limited {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "too many requests",
				"code":    http.StatusTooManyRequests,
			})
			return
		}
	}
}
