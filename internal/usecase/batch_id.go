package usecase

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// IBatchIDGenerator issues the id shared by every record of one import.
type IBatchIDGenerator interface {
	Next() string
}

// SnowflakeBatchIDs issues time-ordered decimal ids. Safe for concurrent use.
type SnowflakeBatchIDs struct {
	node *snowflake.Node
}

func NewSnowflakeBatchIDs(nodeID int64) (*SnowflakeBatchIDs, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("snowflake node %d: %w", nodeID, err)
	}
	return &SnowflakeBatchIDs{node: node}, nil
}

func (g *SnowflakeBatchIDs) Next() string {
	return g.node.Generate().String()
}
