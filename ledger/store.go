package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Store persists blocks of one table's chain.
type Store interface {
	Save(ctx context.Context, b Block) error
	Load(ctx context.Context) ([]Block, error)
}

// MemoryStore keeps blocks in process. Useful when Redis is not configured.
type MemoryStore struct {
	mu     sync.Mutex
	blocks []Block
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Save(_ context.Context, b Block) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blocks = append(m.blocks, b)
	return nil
}

func (m *MemoryStore) Load(_ context.Context) ([]Block, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Block(nil), m.blocks...), nil
}

const historyKeyPrefix = "casino:history:"

// RedisStore keeps a table's chain in a Redis list, one JSON block per
// element, oldest first.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore stores the chain of table under its own list key.
func NewRedisStore(client *redis.Client, table string) *RedisStore {
	return &RedisStore{client: client, key: historyKeyPrefix + table}
}

// Save appends a block with RPUSH.
func (s *RedisStore) Save(ctx context.Context, b Block) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encode block %d: %w", b.Index, err)
	}
	return s.client.RPush(ctx, s.key, data).Err()
}

// Load reads the full list back in order.
func (s *RedisStore) Load(ctx context.Context) ([]Block, error) {
	raw, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	blocks := make([]Block, len(raw))
	for i, r := range raw {
		if err := json.Unmarshal([]byte(r), &blocks[i]); err != nil {
			return nil, fmt.Errorf("decode block %d: %w", i, err)
		}
	}
	return blocks, nil
}

// Open loads the stored chain, verifies it and returns it. An empty store
// gets a fresh genesis block, which is saved right away.
func Open(ctx context.Context, store Store) (*Blockchain, error) {
	blocks, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	if len(blocks) == 0 {
		bc := NewBlockchain()
		if err := store.Save(ctx, bc.Latest()); err != nil {
			return nil, fmt.Errorf("save genesis: %w", err)
		}
		return bc, nil
	}
	return Restore(blocks)
}
