package qdrantDB

import (
	"fmt"

	"github.com/google/uuid"
)

func derivedChunkID(docID string, index int) string {
	name := fmt.Sprintf("%s_chunk_%d", docID, index)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}
