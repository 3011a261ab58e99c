package rounds

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/onenight-api/internal/errors"
	"github.com/KirkDiggler/onenight-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/onenight-api/internal/redis"
)

const (
	// Key patterns: round:{id} and table_rounds:{table_id}
	roundKeyPrefix      = "round:"
	tableRoundKeyPrefix = "table_rounds:"

	// DefaultTTL is used when neither the config nor the call sets one
	DefaultTTL = 24 * time.Hour

	errRoundNil       = "round cannot be nil"
	errRoundIDEmpty   = "round ID cannot be empty"
	errTableIDEmpty   = "table ID cannot be empty"
	errNegativeTTL    = "ttl cannot be negative"
	errRoundNotFound  = "round not found"
	errMarshalRound   = "failed to marshal round"
	errUnmarshalRound = "failed to unmarshal round"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL overrides DefaultTTL
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.TTL < 0 {
		vb.Field("TTL", errNegativeTTL)
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis backed round archive
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Save archives the round and indexes it under its table
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Round == nil {
		return nil, errors.InvalidArgument(errRoundNil)
	}
	if input.Round.ID == "" {
		return nil, errors.InvalidArgument(errRoundIDEmpty)
	}
	if input.Round.TableID == "" {
		return nil, errors.InvalidArgument(errTableIDEmpty)
	}
	if input.TTL < 0 {
		return nil, errors.InvalidArgument(errNegativeTTL)
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = r.ttl
	}

	round := *input.Round
	if round.FinishedAt.IsZero() {
		round.FinishedAt = r.clock.Now()
	}
	round.ExpiresAt = round.FinishedAt.Add(ttl)

	data, err := json.Marshal(&round)
	if err != nil {
		return nil, errors.Wrap(err, errMarshalRound)
	}

	indexKey := tableRoundKeyPrefix + round.TableID
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, roundKeyPrefix+round.ID, data, ttl)
		pipe.ZAdd(ctx, indexKey, redis.Z{
			Score:  float64(round.FinishedAt.UnixNano()),
			Member: round.ID,
		})
		pipe.Expire(ctx, indexKey, ttl)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to archive round %s", round.ID)
	}

	return &SaveOutput{Round: &round}, nil
}

// Get retrieves an archived round by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRoundIDEmpty)
	}

	data, err := r.client.Get(ctx, roundKeyPrefix+input.ID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound(errRoundNotFound).WithMeta("round_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get round %s", input.ID)
	}

	var round Round
	if err := json.Unmarshal(data, &round); err != nil {
		return nil, errors.Wrap(err, errUnmarshalRound)
	}

	return &GetOutput{Round: &round}, nil
}

// ListByTable returns the table's rounds that have not expired, oldest first
func (r *redisRepository) ListByTable(ctx context.Context, input ListByTableInput) (*ListByTableOutput, error) {
	if input.TableID == "" {
		return nil, errors.InvalidArgument(errTableIDEmpty)
	}

	ids, err := r.client.ZRange(ctx, tableRoundKeyPrefix+input.TableID, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list rounds for table %s", input.TableID)
	}
	if len(ids) == 0 {
		return &ListByTableOutput{Rounds: []*Round{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = roundKeyPrefix + id
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load rounds for table %s", input.TableID)
	}

	out := make([]*Round, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// expired between the index read and the fetch
			continue
		}
		var round Round
		if err := json.Unmarshal([]byte(raw), &round); err != nil {
			return nil, errors.Wrap(err, errUnmarshalRound)
		}
		out = append(out, &round)
	}

	return &ListByTableOutput{Rounds: out}, nil
}
