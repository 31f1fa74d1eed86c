package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrTampered is returned by Verify and Restore when the chain does not
// link up.
var ErrTampered = errors.New("hand history tampered")

// ErrNoBlock is returned by Get for an index outside the chain.
var ErrNoBlock = errors.New("no such block")

type Blockchain struct {
	mu     sync.RWMutex
	blocks []Block
}

// NewBlockchain creates a new blockchain with an initialized genesis block.
// The genesis block has index 0, previous hash "0" and an empty record.
func NewBlockchain() *Blockchain {
	bc := &Blockchain{
		blocks: make([]Block, 0),
	}

	genesis := Block{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  "0",
	}
	genesis.Hash = calculateHash(genesis)
	bc.blocks = append(bc.blocks, genesis)

	return bc
}

// Restore rebuilds a chain from previously stored blocks and verifies it.
func Restore(blocks []Block) (*Blockchain, error) {
	if len(blocks) == 0 {
		return NewBlockchain(), nil
	}
	bc := &Blockchain{blocks: append([]Block(nil), blocks...)}
	if err := bc.Verify(); err != nil {
		return nil, err
	}
	return bc, nil
}

// Append adds a record on top of the chain and returns the new block.
func (bc *Blockchain) Append(rec Record) (Block, error) {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	newBlock := bc.next(rec)
	if err := bc.push(newBlock); err != nil {
		return Block{}, err
	}
	return newBlock, nil
}

// Next builds the block that would follow the current tip without adding it,
// so it can be persisted before Push makes it part of the chain.
func (bc *Blockchain) Next(rec Record) Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return bc.next(rec)
}

// Push adds a block built by Next. It fails if the chain grew in between.
func (bc *Blockchain) Push(b Block) error {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	return bc.push(b)
}

func (bc *Blockchain) next(rec Record) Block {
	latest := bc.blocks[len(bc.blocks)-1]

	newBlock := Block{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		Record:    rec,
	}
	newBlock.Hash = calculateHash(newBlock)
	return newBlock
}

func (bc *Blockchain) push(b Block) error {
	if err := validateBlock(b, bc.blocks[len(bc.blocks)-1]); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}
	bc.blocks = append(bc.blocks, b)
	return nil
}

// Latest returns the most recently added block in the blockchain.
func (bc *Blockchain) Latest() Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return bc.blocks[len(bc.blocks)-1]
}

// Get retrieves a block by its index in the chain. Returns an error if the
// index is out of range.
func (bc *Blockchain) Get(index int) (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if index < 0 || index >= len(bc.blocks) {
		return Block{}, fmt.Errorf("%w: index %d of %d", ErrNoBlock, index, len(bc.blocks))
	}
	return bc.blocks[index], nil
}

// Blocks returns a copy of the whole chain, genesis first.
func (bc *Blockchain) Blocks() []Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return append([]Block(nil), bc.blocks...)
}

// Len returns the number of blocks including genesis.
func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return len(bc.blocks)
}

// Verify validates the integrity of the entire blockchain by checking the
// genesis block and each subsequent block's hash, index continuity and
// previous hash linkage.
func (bc *Blockchain) Verify() error {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return fmt.Errorf("%w: empty chain", ErrTampered)
	}
	genesis := bc.blocks[0]
	if genesis.Index != 0 || genesis.PrevHash != "0" || genesis.Hash != calculateHash(genesis) {
		return fmt.Errorf("%w: invalid genesis block", ErrTampered)
	}

	for i := 1; i < len(bc.blocks); i++ {
		if err := validateBlock(bc.blocks[i], bc.blocks[i-1]); err != nil {
			return fmt.Errorf("%w: block %d: %v", ErrTampered, i, err)
		}
	}
	return nil
}

// validateBlock verifies that a block is valid relative to the previous
// block: index continuity, previous hash linkage and its own hash.
func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	expectedHash := calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}
	return nil
}

// calculateHash computes the SHA256 of a block's index, timestamp, previous
// hash and JSON encoded record.
func calculateHash(block Block) string {
	recordBytes, _ := json.Marshal(block.Record)

	data := fmt.Sprintf("%d%d%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(recordBytes),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
