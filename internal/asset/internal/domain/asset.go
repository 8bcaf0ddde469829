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

package domain

type Asset struct {
	Id   int64
	Url  string
	Size int64
	// MimeType 嗅探出来的类型，不信任客户端声明
	MimeType string
	// UploaderId 为 0 表示匿名上传
	UploaderId int64
	Ctime      int64
}

// UploadResult 区分"文件已存储"和"元数据已落库"两件事。
// Recorded 为 false 时文件本身是完好的，目录行等待带外补录
type UploadResult struct {
	Asset    Asset
	Recorded bool
	// RecordErr 仅在 Recorded 为 false 时有值
	RecordErr error
}
