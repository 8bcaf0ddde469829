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

package ioc

import (
	"time"

	"github.com/ecodeclub/studyhub/internal/pkg/limiter"
	"github.com/ecodeclub/studyhub/internal/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

// newRateLimit 按路由类别构造限流中间件，
// 窗口和阈值各自独立配置，配置缺省时是一分钟 60 次
func newRateLimit(cmd redis.Cmdable, routeClass string) gin.HandlerFunc {
	type Config struct {
		Interval time.Duration `yaml:"interval"`
		Rate     int           `yaml:"rate"`
	}
	var cfg Config
	err := econf.UnmarshalKey("limiter."+routeClass, &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 60
	}
	l := limiter.NewRedisSlidingWindowLimiter(cmd, cfg.Interval, cfg.Rate)
	return middleware.NewRateLimitBuilder(l, routeClass).Build()
}
