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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/studyhub/internal/lesson/internal/domain"
	"github.com/pkg/errors"
)

var (
	// ErrContentNotCached 未命中。和缓存故障区分开，
	// 故障由上层决定是否降级
	ErrContentNotCached = errors.New("内容不在缓存中")
)

type LessonECache struct {
	ec ecache.Cache
	// 新 key 的默认过期时间。旧版本的 key 不会被主动删除，
	// 版本推进之后靠 TTL 被动淘汰
	expiration time.Duration
}

func NewLessonECache(ec ecache.Cache, expiration time.Duration) ContentCache {
	return &LessonECache{
		ec: &ecache.NamespaceCache{
			Namespace: "lesson:",
			C:         ec,
		},
		expiration: expiration,
	}
}

func (c *LessonECache) GetContent(ctx context.Context, lessonId, version int64) (domain.ContentView, error) {
	val := c.ec.Get(ctx, c.contentKey(lessonId, version))
	if val.KeyNotFound() {
		return domain.ContentView{}, ErrContentNotCached
	}
	if val.Err != nil {
		return domain.ContentView{}, errors.Wrap(val.Err, "查询内容缓存出错")
	}
	var view domain.ContentView
	err := json.Unmarshal([]byte(val.Val.(string)), &view)
	if err != nil {
		return domain.ContentView{}, errors.Wrap(err, "反序列化内容投影失败")
	}
	return view, nil
}

func (c *LessonECache) SetContent(ctx context.Context, view domain.ContentView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return errors.Wrap(err, "序列化内容投影失败")
	}
	return c.ec.Set(ctx, c.contentKey(view.LessonId, view.Version), string(data), c.expiration)
}

// 版本是 key 的一部分，内容更新之后旧 key 不可能再被算出来，
// 所以这里永远不需要显式失效
func (c *LessonECache) contentKey(lessonId, version int64) string {
	return fmt.Sprintf("content:%d:v%d", lessonId, version)
}
