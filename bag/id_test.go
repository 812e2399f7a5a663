// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bag_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bagstore/bag"
	"github.com/bitmark-inc/bagstore/fault"
)

func TestIdText(t *testing.T) {
	tests := []struct {
		id   bag.Id
		text string
	}{
		{bag.Static(bag.Council), "static:council"},
		{bag.Static(bag.WorkingGroupBag(bag.Forum)), "static:wg:forum"},
		{bag.Static(bag.WorkingGroupBag(bag.Storage)), "static:wg:storage"},
		{bag.Static(bag.WorkingGroupBag(bag.Operations)), "static:wg:operations"},
		{bag.Dynamic(bag.Member(7)), "dynamic:member:7"},
		{bag.Dynamic(bag.Channel(3)), "dynamic:channel:3"},
		{bag.Channel(18446744073709551615).BagId(), "dynamic:channel:18446744073709551615"},
	}

	for i, item := range tests {
		assert.Equal(t, item.text, item.id.String(), "%d: string", i)

		parsed, err := bag.ParseId(item.text)
		assert.Nil(t, err, "%d: parse", i)
		assert.Equal(t, item.id, parsed, "%d: parsed", i)

		fromKey, err := bag.IdFromKey(item.id.Key())
		assert.Nil(t, err, "%d: from key", i)
		assert.Equal(t, item.id, fromKey, "%d: key round trip", i)
		assert.Equal(t, bag.KeyLength, len(item.id.Key()), "%d: key length", i)
	}
}

func TestInvalidIds(t *testing.T) {
	for _, s := range []string{"", "static", "static:wg:unknown", "dynamic:member:x", "dynamic:group:1", "council", "dynamic:member:-1"} {
		_, err := bag.ParseId(s)
		assert.Equal(t, fault.InvalidBagId, err, "parse %q", s)
	}

	for _, key := range [][]byte{
		{},
		{0, 0, 0},
		{2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 8, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 2, 0, 0, 0, 0, 0, 0, 0, 1},
	} {
		_, err := bag.IdFromKey(key)
		assert.Equal(t, fault.InvalidBagId, err, "key %x", key)
	}
}

func TestIdKinds(t *testing.T) {
	id := bag.Static(bag.WorkingGroupBag(bag.Content))
	s, ok := id.StaticId()
	assert.True(t, ok, "static")
	group, ok := s.WorkingGroup()
	assert.True(t, ok, "working group")
	assert.Equal(t, bag.Content, group, "group")
	_, ok = id.DynamicId()
	assert.False(t, ok, "not dynamic")

	_, ok = bag.Council.WorkingGroup()
	assert.False(t, ok, "council is not a group")

	d, ok := bag.Dynamic(bag.Member(4)).DynamicId()
	assert.True(t, ok, "dynamic")
	assert.Equal(t, bag.Member(4), d, "dynamic id")

	assert.NotEqual(t, bag.Dynamic(bag.Member(4)), bag.Dynamic(bag.Channel(4)), "type distinguishes")
	assert.NotEqual(t, bag.Static(bag.Council), bag.Dynamic(bag.Member(0)), "class distinguishes")
}

func TestIdJSON(t *testing.T) {
	type request struct {
		BagId     bag.Id             `json:"bagId"`
		DynamicId bag.DynamicBagId   `json:"dynamicBagId"`
		Type      bag.DynamicBagType `json:"type"`
	}
	r := request{
		BagId:     bag.Static(bag.Council),
		DynamicId: bag.Channel(9),
		Type:      bag.ChannelType,
	}

	buffer, err := json.Marshal(r)
	require.Nil(t, err, "marshal")
	assert.Equal(t, `{"bagId":"static:council","dynamicBagId":"dynamic:channel:9","type":"channel"}`, string(buffer), "json")

	var decoded request
	require.Nil(t, json.Unmarshal(buffer, &decoded), "unmarshal")
	assert.Equal(t, r, decoded, "round trip")

	err = json.Unmarshal([]byte(`{"dynamicBagId":"static:council"}`), &decoded)
	assert.NotNil(t, err, "static id as dynamic")
}
