package formsession

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-TheatreBooking/internal/bookingform"
	"github.com/m04kA/SMC-TheatreBooking/internal/infra/cache"
)

// releaseScript снимает блокировку, только если она всё ещё наша
const releaseScript = `
if redis.call('GET', KEYS[1]) == ARGV[1] then
  return redis.call('DEL', KEYS[1])
end
return 0
`

// Store хранит формы бронирования между запросами
type Store struct {
	rdb     redis.Cmdable
	ttl     time.Duration
	lockTTL time.Duration
	release *redis.Script
}

// NewStore создает хранилище сессий. ttl продлевается при каждом сохранении
func NewStore(rdb redis.Cmdable, ttl, lockTTL time.Duration) *Store {
	return &Store{
		rdb:     rdb,
		ttl:     ttl,
		lockTTL: lockTTL,
		release: redis.NewScript(releaseScript),
	}
}

// Save сохраняет форму и продлевает срок жизни сессии
func (s *Store) Save(ctx context.Context, form *bookingform.Form) error {
	payload, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("%w: Save - form=%s: %v", ErrEncode, form.ID, err)
	}

	if err := s.rdb.Set(ctx, cache.KeyFormSession(form.ID.String()), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - form=%s: %v", ErrRedis, form.ID, err)
	}
	return nil
}

// Load читает форму по id
func (s *Store) Load(ctx context.Context, id uuid.UUID) (*bookingform.Form, error) {
	payload, err := s.rdb.Get(ctx, cache.KeyFormSession(id.String())).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - form=%s: %v", ErrRedis, id, err)
	}

	var form bookingform.Form
	if err := json.Unmarshal(payload, &form); err != nil {
		return nil, fmt.Errorf("%w: Load - form=%s: %v", ErrDecode, id, err)
	}
	if form.FieldErrors == nil {
		form.FieldErrors = bookingform.FieldErrors{}
	}
	return &form, nil
}

// Delete удаляет сессию
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.rdb.Del(ctx, cache.KeyFormSession(id.String())).Err(); err != nil {
		return fmt.Errorf("%w: Delete - form=%s: %v", ErrRedis, id, err)
	}
	return nil
}

// AcquireLock блокирует форму на время изменения. ok=false, если форму уже меняет
// другой запрос, например идёт отправка
func (s *Store) AcquireLock(ctx context.Context, id uuid.UUID) (token string, ok bool, err error) {
	token = randomHex(12)
	ok, err = s.rdb.SetNX(ctx, cache.KeyFormLock(id.String()), token, s.lockTTL).Result()
	if err != nil {
		return "", false, fmt.Errorf("%w: AcquireLock - form=%s: %v", ErrRedis, id, err)
	}
	return token, ok, nil
}

// ReleaseLock снимает блокировку, если её токен совпадает
func (s *Store) ReleaseLock(ctx context.Context, id uuid.UUID, token string) error {
	err := s.release.Run(ctx, s.rdb, []string{cache.KeyFormLock(id.String())}, token).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: ReleaseLock - form=%s: %v", ErrRedis, id, err)
	}
	return nil
}

func randomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
