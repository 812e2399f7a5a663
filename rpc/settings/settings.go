// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package settings

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bagstore/account"
	"github.com/bitmark-inc/bagstore/bag"
	"github.com/bitmark-inc/bagstore/currency"
	"github.com/bitmark-inc/bagstore/fault"
	"github.com/bitmark-inc/bagstore/objectstorage"
	"github.com/bitmark-inc/bagstore/rpc/ratelimit"
)

const (
	rateLimitSettings = 200
	rateBurstSettings = 100

	maximumBlacklistUpdate = 1000
)

// SettingsManager - leader controlled settings of the storage module
type SettingsManager interface {
	UpdateUploadingBlockedStatus(caller account.Account, blocked bool) error
	UpdateDataSizeFee(caller account.Account, fee currency.Balance) error
	UpdateStorageBucketsPerBagLimit(caller account.Account, limit uint64) error
	UpdateStorageBucketsVoucherMaxLimits(caller account.Account, sizeLimit uint64, objectsLimit uint64) error
	UpdateNumberOfStorageBucketsInDynamicBagCreationPolicy(caller account.Account, t bag.DynamicBagType, number uint64) error
	UpdateBlacklist(caller account.Account, remove [][]byte, add [][]byte) error

	Settings() objectstorage.Settings
	Parameters() objectstorage.Parameters
	DynamicBagCreationPolicy(t bag.DynamicBagType) objectstorage.DynamicBagCreationPolicy
	IsBlacklisted(cid []byte) bool
}

// Settings - type for RPC calls
type Settings struct {
	Log     *logger.L
	Limiter *rate.Limiter
	manager SettingsManager
}

// New - settings service
func New(log *logger.L, manager SettingsManager) *Settings {
	return &Settings{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitSettings, rateBurstSettings),
		manager: manager,
	}
}

// Reply - empty result of a state changing request
type Reply struct{}

// ---

// BlockedArguments - uploading blocked flag
type BlockedArguments struct {
	Caller  account.Account `json:"caller"`
	Blocked bool            `json:"blocked"`
}

// UpdateUploadingBlocked - stop or resume all uploads
func (s *Settings) UpdateUploadingBlocked(arguments *BlockedArguments, reply *Reply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}
	return s.manager.UpdateUploadingBlockedStatus(arguments.Caller, arguments.Blocked)
}

// FeeArguments - new per megabyte fee
type FeeArguments struct {
	Caller account.Account  `json:"caller"`
	Fee    currency.Balance `json:"fee"`
}

// UpdateDataSizeFee - change the upload fee
func (s *Settings) UpdateDataSizeFee(arguments *FeeArguments, reply *Reply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}
	return s.manager.UpdateDataSizeFee(arguments.Caller, arguments.Fee)
}

// PerBagLimitArguments - new buckets per bag limit
type PerBagLimitArguments struct {
	Caller account.Account `json:"caller"`
	Limit  uint64          `json:"limit"`
}

// UpdatePerBagLimit - change the buckets per bag limit
func (s *Settings) UpdatePerBagLimit(arguments *PerBagLimitArguments, reply *Reply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}
	return s.manager.UpdateStorageBucketsPerBagLimit(arguments.Caller, arguments.Limit)
}

// VoucherMaxLimitsArguments - new bucket capacity ceilings
type VoucherMaxLimitsArguments struct {
	Caller       account.Account `json:"caller"`
	SizeLimit    uint64          `json:"sizeLimit"`
	ObjectsLimit uint64          `json:"objectsLimit"`
}

// UpdateVoucherMaxLimits - change the ceilings of bucket vouchers
func (s *Settings) UpdateVoucherMaxLimits(arguments *VoucherMaxLimitsArguments, reply *Reply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}
	return s.manager.UpdateStorageBucketsVoucherMaxLimits(arguments.Caller, arguments.SizeLimit, arguments.ObjectsLimit)
}

// PolicyArguments - buckets for new dynamic bags of one type
type PolicyArguments struct {
	Caller                 account.Account    `json:"caller"`
	Type                   bag.DynamicBagType `json:"type"`
	NumberOfStorageBuckets uint64             `json:"numberOfStorageBuckets"`
}

// UpdateCreationPolicy - change a dynamic bag creation policy
func (s *Settings) UpdateCreationPolicy(arguments *PolicyArguments, reply *Reply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}
	return s.manager.UpdateNumberOfStorageBucketsInDynamicBagCreationPolicy(arguments.Caller, arguments.Type, arguments.NumberOfStorageBuckets)
}

// BlacklistArguments - content ids to remove and add
type BlacklistArguments struct {
	Caller account.Account `json:"caller"`
	Remove [][]byte        `json:"remove"`
	Add    [][]byte        `json:"add"`
}

// UpdateBlacklist - change the blocked content ids
func (s *Settings) UpdateBlacklist(arguments *BlacklistArguments, reply *Reply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if len(arguments.Remove)+len(arguments.Add) > maximumBlacklistUpdate {
		return fault.InvalidCount
	}
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}
	return s.manager.UpdateBlacklist(arguments.Caller, arguments.Remove, arguments.Add)
}

// ---

// GetArguments - empty arguments for the settings request
type GetArguments struct{}

// GetReply - everything that shapes validation
type GetReply struct {
	Settings   objectstorage.Settings                            `json:"settings"`
	Parameters objectstorage.Parameters                          `json:"parameters"`
	Policies   map[string]objectstorage.DynamicBagCreationPolicy `json:"policies"`
}

// Get - current settings, constants and creation policies
func (s *Settings) Get(_ *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	reply.Settings = s.manager.Settings()
	reply.Parameters = s.manager.Parameters()
	reply.Policies = make(map[string]objectstorage.DynamicBagCreationPolicy)
	for _, t := range bag.DynamicBagTypes {
		reply.Policies[t.String()] = s.manager.DynamicBagCreationPolicy(t)
	}
	return nil
}

// BlacklistedArguments - one content id
type BlacklistedArguments struct {
	ContentId []byte `json:"contentId"`
}

// BlacklistedReply - whether uploads of the content id are rejected
type BlacklistedReply struct {
	Blacklisted bool `json:"blacklisted"`
}

// IsBlacklisted - check one content id
func (s *Settings) IsBlacklisted(arguments *BlacklistedArguments, reply *BlacklistedReply) error {
	if nil == arguments || 0 == len(arguments.ContentId) {
		return fault.MissingParameters
	}
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}
	reply.Blacklisted = s.manager.IsBlacklisted(arguments.ContentId)
	return nil
}
