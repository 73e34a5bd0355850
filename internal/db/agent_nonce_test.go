package db

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStaleNonceFromInsertErrDuplicateKey(t *testing.T) {
	// Two first-time calls racing on the same owner collide on the _id index.
	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
	err := staleNonceFromInsertErr("owner-1", dup)
	require.True(t, IsStaleNonceError(err))
}

func TestStaleNonceFromInsertErrOtherWriteFailure(t *testing.T) {
	// A write failure that is not a duplicate key is not a nonce race and
	// must surface unchanged.
	conflict := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 112}}}
	err := staleNonceFromInsertErr("owner-1", conflict)
	require.False(t, IsStaleNonceError(err))
	require.Equal(t, error(conflict), err)

	plain := errors.New("connection reset")
	require.Equal(t, plain, staleNonceFromInsertErr("owner-1", plain))
}
