package usecase

import "errors"

var (
	// ErrNoFiles はアップロード対象が1件もない場合のエラーです。
	ErrNoFiles = errors.New("no files provided")
	// ErrUnsupportedType は画像・動画以外のMIMEタイプです。
	ErrUnsupportedType = errors.New("unsupported media type")
	// ErrFileTooLarge は MaxFileSize を超えるファイルです。
	ErrFileTooLarge = errors.New("file too large")
	// ErrEmptyFile は0バイトのファイルです。
	ErrEmptyFile = errors.New("file is empty")
	// ErrRejectedContent はスクリーニングで不適切と判定されたファイルです。
	ErrRejectedContent = errors.New("content rejected by screening")
)
