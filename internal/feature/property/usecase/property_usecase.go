package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"estate_backend/internal/feature/property/domain/entity"
	"estate_backend/internal/shared/identity"
)

const (
	// DefaultPageSize は一覧取得の既定件数です。
	DefaultPageSize = 20
	// MaxPageSize は一覧取得の上限件数です。
	MaxPageSize = 100
)

// PropertyRepository は物件エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type PropertyRepository interface {
	// Create は物件を保存し、採番されたIDとタイムスタンプを p に設定します。
	Create(ctx context.Context, p *entity.Property) error

	// FindByID は物件を取得します。存在しない場合 ErrPropertyNotFound を返します。
	FindByID(ctx context.Context, id uint) (*entity.Property, error)

	// List は新しい順に1ページ分の物件と総件数を返します。
	List(ctx context.Context, q ListQuery) ([]entity.Property, int64, error)

	// Count は全物件数を返します。
	Count(ctx context.Context) (int64, error)

	// UpdateOwned は id と user_id の両方が一致する行のみ更新します。
	// 一致する行がない場合 ErrPropertyNotFound を返します。
	UpdateOwned(ctx context.Context, p *entity.Property) error

	// DeleteOwned は id と user_id の両方が一致する行を削除します。該当行がなくてもエラーにしません。
	DeleteOwned(ctx context.Context, id uint, ownerID string) error
}

// ListQuery は一覧取得の条件です。OwnerID が空なら全ユーザーの物件を対象にします。
type ListQuery struct {
	Page    int
	Limit   int
	OwnerID string
}

// Offset は Page と Limit から読み飛ばす件数を返します。
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

func (q ListQuery) normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageSize
	}
	if q.Limit > MaxPageSize {
		q.Limit = MaxPageSize
	}
	return q
}

// PropertyPage は一覧の1ページ分です。
type PropertyPage struct {
	Items []entity.Property
	Total int64
	Page  int
	Limit int
}

// PropertyInput は作成・更新時にクライアントが指定できる項目です。
// 所有者はここに含めず、常に呼び出し元のIdentityから決定します。
type PropertyInput struct {
	Title       string
	Description string
	Price       int64
	Location    string
	Images      []string
}

type propertyUsecase struct {
	repo PropertyRepository
}

// NewPropertyUsecase はpropertyUsecaseの新しいインスタンスを生成します。
func NewPropertyUsecase(repo PropertyRepository) *propertyUsecase {
	return &propertyUsecase{repo: repo}
}

// cloneImages は呼び出し元のスライスと共有しないよう順序・内容をそのままコピーします。
func cloneImages(images []string) []string {
	return append(make([]string, 0, len(images)), images...)
}

// Create は呼び出し元を所有者として物件を作成します。
func (u *propertyUsecase) Create(ctx context.Context, caller *identity.Identity, in PropertyInput) (*entity.Property, error) {
	if caller == nil {
		return nil, ErrUnauthorized
	}
	p := &entity.Property{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Location:    in.Location,
		Images:      cloneImages(in.Images),
		UserID:      caller.ID,
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}
	slog.Info("property created", "property_id", p.ID, "user_id", caller.ID)
	return p, nil
}

// Get は物件を1件取得します。未認証でも参照できます。
func (u *propertyUsecase) Get(ctx context.Context, id uint) (*entity.Property, error) {
	return u.repo.FindByID(ctx, id)
}

// List は物件一覧を新しい順に返します。未認証でも参照できます。
func (u *propertyUsecase) List(ctx context.Context, q ListQuery) (*PropertyPage, error) {
	q = q.normalize()
	items, total, err := u.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return &PropertyPage{Items: items, Total: total, Page: q.Page, Limit: q.Limit}, nil
}

// Count は全物件数を返します。
func (u *propertyUsecase) Count(ctx context.Context) (int64, error) {
	return u.repo.Count(ctx)
}

// authorize は物件を取得して所有者チェックを行います。
func (u *propertyUsecase) authorize(ctx context.Context, caller *identity.Identity, id uint) (*entity.Property, Decision, error) {
	p, err := u.repo.FindByID(ctx, id)
	if errors.Is(err, ErrPropertyNotFound) {
		return nil, NotFound, nil
	}
	if err != nil {
		return nil, NotFound, err
	}
	return p, Authorize(caller, p), nil
}

// Update は所有者のみ物件を更新できます。
func (u *propertyUsecase) Update(ctx context.Context, caller *identity.Identity, id uint, in PropertyInput) (*entity.Property, error) {
	if caller == nil {
		return nil, ErrUnauthorized
	}
	current, decision, err := u.authorize(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	switch decision {
	case NotFound:
		return nil, ErrPropertyNotFound
	case Forbidden:
		slog.Warn("property update forbidden", "property_id", id, "user_id", caller.ID)
		return nil, ErrForbidden
	}

	current.Title = in.Title
	current.Description = in.Description
	current.Price = in.Price
	current.Location = in.Location
	current.Images = cloneImages(in.Images)

	// 並行削除された場合は UpdateOwned が ErrPropertyNotFound を返す
	if err := u.repo.UpdateOwned(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete は所有者のみ物件を削除できます。存在しないIDの削除は成功扱いです。
func (u *propertyUsecase) Delete(ctx context.Context, caller *identity.Identity, id uint) error {
	if caller == nil {
		return ErrUnauthorized
	}
	_, decision, err := u.authorize(ctx, caller, id)
	if err != nil {
		return err
	}
	switch decision {
	case NotFound:
		return nil
	case Forbidden:
		slog.Warn("property delete forbidden", "property_id", id, "user_id", caller.ID)
		return ErrForbidden
	}
	if err := u.repo.DeleteOwned(ctx, id, caller.ID); err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}
	slog.Info("property deleted", "property_id", id, "user_id", caller.ID)
	return nil
}
