// Package entity はmediaフィーチャーのドメインモデルを定義します。
package entity

import (
	"io"
	"strings"
)

// Kind はメディアの種別です。
type Kind string

const (
	KindImage   Kind = "image"
	KindVideo   Kind = "video"
	KindUnknown Kind = ""
)

// MediaFile はアップロード対象の1ファイルを表します。
type MediaFile struct {
	Name        string // クライアントが送ったファイル名
	ContentType string // MIMEタイプ（例: image/png）
	Size        int64  // バイト数
	Open        func() (io.ReadCloser, error)
}

// Kind はMIMEタイプから種別を判定します。
func (f MediaFile) Kind() Kind {
	ct := strings.ToLower(strings.TrimSpace(f.ContentType))
	switch {
	case strings.HasPrefix(ct, "image/"):
		return KindImage
	case strings.HasPrefix(ct, "video/"):
		return KindVideo
	default:
		return KindUnknown
	}
}

// UploadFailure はアップロードできなかったファイルとその理由です。
type UploadFailure struct {
	File     string
	Err      error
	Rejected bool // true: 送信前の検証で弾いた / false: アップロード先で失敗
}

// UploadResult は一括アップロードの結果です。URLs は入力順を保ちます。
type UploadResult struct {
	URLs     []string
	Failures []UploadFailure
}

// AllRejected は成功が0件で、全ての失敗が検証によるものかを返します。
func (r *UploadResult) AllRejected() bool {
	if len(r.URLs) > 0 || len(r.Failures) == 0 {
		return false
	}
	for _, f := range r.Failures {
		if !f.Rejected {
			return false
		}
	}
	return true
}
