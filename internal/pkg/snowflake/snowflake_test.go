// Copyright 2024 shophub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package snowflake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator(t *testing.T) {
	t.Parallel()
	g, err := NewGenerator(1)
	require.NoError(t, err)

	first := g.Generate()
	second := g.Generate()
	assert.Greater(t, second, first)
}

func TestNewGenerator_NodeOutOfRange(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		nodeID int64
	}{
		{name: "负数节点", nodeID: -1},
		{name: "超过上限", nodeID: 1024},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGenerator(tc.nodeID)
			assert.ErrorIs(t, err, ErrExceedNode)
		})
	}
}
