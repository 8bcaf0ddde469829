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

package storage

import "context"

// Uploader 把二进制写进持久存储，返回可访问的 URL。
// 返回错误意味着文件没有落稳，调用方必须按失败处理
type Uploader interface {
	Upload(ctx context.Context, key string, mimeType string, data []byte) (string, error)
}

// Presigner 可选能力，给客户端签出直传 URL
type Presigner interface {
	PresignPut(ctx context.Context, key string, mimeType string) (string, error)
}
