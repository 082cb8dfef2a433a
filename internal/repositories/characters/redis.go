package characters

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/KirkDiggler/text-rpg/internal/domain/character"
	dnderr "github.com/KirkDiggler/text-rpg/internal/errors"
	"github.com/KirkDiggler/text-rpg/internal/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultLockTTL bounds how long a crashed saver can hold a slot
const DefaultLockTTL = 10 * time.Second

// releaseLockScript deletes the lock only if this saver still owns it
const releaseLockScript = `if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator // lock tokens
	LockTTL       time.Duration  // default: DefaultLockTTL
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	lockTTL       time.Duration
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	repo := &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
		lockTTL:       cfg.LockTTL,
	}
	if repo.uuidGenerator == nil {
		repo.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if repo.lockTTL <= 0 {
		repo.lockTTL = DefaultLockTTL
	}

	return repo
}

// key generates the Redis key for a save slot
func (r *redisRepo) key(slot string) string {
	return fmt.Sprintf("save:%s", slot)
}

// lockKey generates the Redis key guarding writes to a slot
func (r *redisRepo) lockKey(slot string) string {
	return fmt.Sprintf("save:%s:lock", slot)
}

// slotsKey is the set of every stored slot
func (r *redisRepo) slotsKey() string {
	return "saves"
}

// Load implements Repository
func (r *redisRepo) Load(ctx context.Context, slot string) (*character.Character, error) {
	if err := ValidateSlot(slot); err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, r.key(slot)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, dnderr.MissingSaveFilef("no save for slot %s", slot).WithMeta("slot", slot)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get save: %w", err)
	}

	char, err := Decode([]byte(data))
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to load slot %s", slot).WithMeta("slot", slot)
	}
	return char, nil
}

// Save implements Repository
func (r *redisRepo) Save(ctx context.Context, slot string, char *character.Character) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}

	data, err := Encode(char)
	if err != nil {
		return err
	}

	token := r.uuidGenerator.New()
	acquired, err := r.client.SetNX(ctx, r.lockKey(slot), token, r.lockTTL).Result()
	if err != nil {
		return fmt.Errorf("failed to acquire save lock: %w", err)
	}
	if !acquired {
		return dnderr.Internalf("slot %s is being saved by another process", slot).WithMeta("slot", slot)
	}
	defer r.unlock(slot, token)

	if err := r.client.Set(ctx, r.key(slot), string(data), 0).Err(); err != nil {
		return fmt.Errorf("failed to set save: %w", err)
	}
	if err := r.client.SAdd(ctx, r.slotsKey(), slot).Err(); err != nil {
		return fmt.Errorf("failed to index save slot: %w", err)
	}

	return nil
}

func (r *redisRepo) unlock(slot, token string) {
	// Release even if the save context was cancelled
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := r.client.Eval(ctx, releaseLockScript, []string{r.lockKey(slot)}, token).Err(); err != nil {
		log.Printf("Failed to release save lock of slot %s: %v", slot, err)
	}
}

// Delete implements Repository
func (r *redisRepo) Delete(ctx context.Context, slot string) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}

	deleted, err := r.client.Del(ctx, r.key(slot)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete save: %w", err)
	}
	if err := r.client.SRem(ctx, r.slotsKey(), slot).Err(); err != nil {
		return fmt.Errorf("failed to unindex save slot: %w", err)
	}
	if deleted == 0 {
		return dnderr.MissingSaveFilef("no save for slot %s", slot).WithMeta("slot", slot)
	}

	return nil
}

// ListSlots implements Repository
func (r *redisRepo) ListSlots(ctx context.Context) ([]string, error) {
	slots, err := r.client.SMembers(ctx, r.slotsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list save slots: %w", err)
	}

	sort.Strings(slots)
	return slots, nil
}
