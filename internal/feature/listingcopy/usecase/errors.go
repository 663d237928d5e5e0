package usecase

import "errors"

// ErrInsufficientFacts は説明文もタイトル＋所在地もない場合のエラーです。
var ErrInsufficientFacts = errors.New("at least a description or title + location is required")
