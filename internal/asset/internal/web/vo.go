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

package web

type UploadResp struct {
	Success  bool   `json:"success"`
	Url      string `json:"url,omitempty"`
	Size     int64  `json:"size,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	// Recorded 为 false 表示文件已存储但目录行没写进去
	Recorded    bool   `json:"recorded"`
	RecordError string `json:"recordError,omitempty"`
	Error       string `json:"error,omitempty"`
	Code        int    `json:"code,omitempty"`
}

type PresignReq struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
}

type PresignResp struct {
	Success bool   `json:"success"`
	Url     string `json:"url,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    int    `json:"code,omitempty"`
}

type AssetVO struct {
	Id         int64  `json:"id"`
	Url        string `json:"url"`
	UploaderId int64  `json:"uploaderId"`
	Size       int64  `json:"size"`
	MimeType   string `json:"mimeType"`
	Ctime      int64  `json:"ctime"`
}

type RecentResp struct {
	Success bool      `json:"success"`
	Data    []AssetVO `json:"data,omitempty"`
	Error   string    `json:"error,omitempty"`
	Code    int       `json:"code,omitempty"`
}
