// SPDX-License-Identifier: ice License 1.0

package time

import (
	"context"
	"testing"
	stdlibtime "time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

//nolint:funlen // It's better to keep it together.
func TestTime(t *testing.T) {
	t.Parallel()
	type challenge struct {
		IssuedAt *Time `json:"issuedAt"`
	}
	time1, err := stdlibtime.Parse(stdlibtime.RFC3339Nano, "2006-01-02T15:04:05.999999999Z")
	require.NoError(t, err)
	c1 := challenge{IssuedAt: New(time1)}
	binary, err := c1.IssuedAt.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, "2006-01-02T15:04:05.999999999Z", string(binary))
	text, err := c1.IssuedAt.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2006-01-02T15:04:05.999999999Z", string(text))
	c111 := challenge{IssuedAt: new(Time)}
	require.NoError(t, c111.IssuedAt.UnmarshalBinary(binary))
	c112 := challenge{IssuedAt: new(Time)}
	require.NoError(t, c112.IssuedAt.UnmarshalText(binary))
	assert.EqualValues(t, c111, c112)
	assert.EqualValues(t, challenge{IssuedAt: New(time1)}, c112)
	c111 = challenge{IssuedAt: new(Time)}
	require.NoError(t, c111.IssuedAt.UnmarshalBinary([]byte("")))
	c112 = challenge{IssuedAt: new(Time)}
	require.NoError(t, c112.IssuedAt.UnmarshalText([]byte("")))
	assert.EqualValues(t, c111, c112)
	assert.EqualValues(t, challenge{IssuedAt: new(Time)}, c112)
	marshalBinary1, err := c112.IssuedAt.MarshalBinary()
	require.NoError(t, err)
	marshalBinary2, err := c111.IssuedAt.MarshalText()
	require.NoError(t, err)
	assert.EqualValues(t, marshalBinary1, marshalBinary2)
	assert.EqualValues(t, string(marshalBinary1), "")
	bytes, err := json.MarshalContext(context.Background(), c1)
	require.NoError(t, err)
	assert.Equal(t, `{"issuedAt":"2006-01-02T15:04:05.999999999Z"}`, string(bytes))
	bytes, err = msgpack.Marshal(c1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x81, 0xa8, 0x49, 0x73, 0x73, 0x75, 0x65, 0x64, 0x41, 0x74, 0xcf, 0xf, 0xc4, 0xa4, 0xd6, 0x39, 0x91, 0x7b, 0xff}, bytes)
	var c11 challenge
	require.NoError(t, msgpack.Unmarshal(bytes, &c11))
	assert.Equal(t, c1, c11)
	var c2 challenge
	require.NoError(t, json.UnmarshalContext(context.Background(), []byte(`{"issuedAt":1}`), &c2))
	assert.Equal(t, challenge{IssuedAt: New(stdlibtime.Unix(0, 1).UTC())}, c2)
	bytes, err = json.MarshalContext(context.Background(), &challenge{IssuedAt: New(stdlibtime.Unix(0, 0).UTC())})
	require.NoError(t, err)
	assert.Equal(t, `{"issuedAt":null}`, string(bytes))
	var c21 challenge
	require.NoError(t, json.UnmarshalContext(context.Background(), []byte(`{"issuedAt":1724198400123456789}`), &c21))
	assert.Equal(t, challenge{IssuedAt: New(stdlibtime.Unix(0, 1724198400123456789).UTC())}, c21)
	var c22 challenge
	require.NoError(t, json.UnmarshalContext(context.Background(), []byte(`{"issuedAt":1724198400000}`), &c22))
	assert.Equal(t, challenge{IssuedAt: New(stdlibtime.Unix(0, 1724198400000000000).UTC())}, c22)
	var c3 challenge
	require.NoError(t, json.UnmarshalContext(context.Background(), []byte(`{"issuedAt":"2006-01-02T15:04:05.999999999Z"}`), &c3))
	assert.Equal(t, c1, c3)
	bytes, err = json.MarshalContext(context.Background(), challenge{IssuedAt: Now()})
	require.NoError(t, err)
	assert.Regexp(t, `{"issuedAt":".+"}`, string(bytes))
}
