// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type BalanceError GenericError
type ExistsError GenericError
type InternalError GenericError
type InvalidError GenericError
type LimitError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError
type StateError GenericError

// process and set up errors - keep in alphabetic order
var (
	AlreadyInitialised         = ProcessError("already initialised")
	CertificateFileExists      = ExistsError("certificate file already exists")
	DatabaseIsNotSet           = ProcessError("database is not set")
	InvalidConfiguration       = InvalidError("configuration file did not return a table")
	InvalidCount               = InvalidError("invalid count")
	InvalidIpAddress           = InvalidError("invalid IP address")
	KeyFileExists              = ExistsError("key file already exists")
	MissingParameters          = InvalidError("missing parameters")
	NotAvailableInReadOnlyMode = ProcessError("not available in read-only mode")
	NotInitialised             = ProcessError("not initialised")
	RateLimiting               = ProcessError("rate limiting")
	TransactionAlreadyInUse    = ProcessError("transaction already in use")
	TransactionNotInUse        = ProcessError("transaction not in use")
)

// account and authorisation errors - keep in alphabetic order
var (
	AccountChecksumMismatch = InvalidError("account checksum mismatch")
	CannotDecodeAccount     = InvalidError("cannot decode account")
	InvalidAccountLength    = InvalidError("invalid account length")
	InvalidWorkerOrigin     = PermissionError("invalid worker origin")
	NotLeader               = PermissionError("not working group leader")
	UnsignedOrigin          = PermissionError("unsigned origin")
)

// capacity errors - keep in alphabetic order
var (
	BlacklistSizeLimitExceeded            = LimitError("blacklist size limit exceeded")
	DataObjectsPerBagLimitExceeded        = LimitError("data objects per bag limit exceeded")
	MaxDataObjectSizeExceeded             = LimitError("max data object size exceeded")
	MaxStorageBucketNumberLimitExceeded   = LimitError("max storage bucket number limit exceeded")
	StorageBucketObjectNumberLimitReached = LimitError("object number limit for the storage bucket reached")
	StorageBucketObjectSizeLimitReached   = LimitError("objects total size limit for the storage bucket reached")
	StorageBucketPerBagLimitExceeded      = LimitError("storage buckets per bag limit exceeded")
	StorageBucketsPerBagLimitTooHigh      = LimitError("storage buckets per bag limit is too high")
	StorageBucketsPerBagLimitTooLow       = LimitError("storage buckets per bag limit is too low")
	VoucherMaxObjectNumberLimitExceeded   = LimitError("max object number limit exceeded for voucher")
	VoucherMaxObjectSizeLimitExceeded     = LimitError("max object size limit exceeded for voucher")
)

// existence errors - keep in alphabetic order
var (
	DataObjectDoesntExist              = NotFoundError("data object doesn't exist")
	DynamicBagDoesntExist              = NotFoundError("dynamic bag doesn't exist")
	DynamicBagExists                   = ExistsError("dynamic bag exists")
	StorageBucketDoesntExist           = NotFoundError("storage bucket doesn't exist")
	StorageProviderOperatorDoesntExist = NotFoundError("storage provider operator doesn't exist")
)

// invitation state errors - keep in alphabetic order
var (
	DifferentStorageProviderInvited = StateError("another storage provider was invited")
	InvalidStorageProvider          = StateError("invalid storage provider for bucket")
	InvitedStorageProvider          = StateError("storage provider was already invited")
	NoStorageBucketInvitation       = StateError("there is no storage bucket invitation")
	StorageProviderAlreadySet       = StateError("storage provider was already set")
	StorageProviderMustBeSet        = StateError("storage provider must be set")
)

// financial errors - keep in alphabetic order
var (
	InsufficientBalance               = BalanceError("insufficient balance")
	InsufficientTreasuryBalance       = BalanceError("insufficient module treasury balance")
	InvalidDeletionPrizeSourceAccount = BalanceError("invalid deletion prize source account")
)

// validation errors - keep in alphabetic order
var (
	CannotDeleteNonEmptyStorageBucket  = InvalidError("cannot delete a non-empty storage bucket")
	DataObjectBlacklisted              = InvalidError("data object hash is part of the blacklist")
	DataObjectIdCollectionIsEmpty      = InvalidError("data object id collection is empty")
	DataSizeFeeChanged                 = InvalidError("data size fee changed")
	EmptyContentId                     = InvalidError("empty content id provided")
	InvalidBagId                       = InvalidError("invalid bag id")
	InvalidOperatorStatus              = InvalidError("invalid operator status")
	NoObjectsOnUpload                  = InvalidError("empty data object creation collection")
	SourceAndDestinationBagsAreEqual   = InvalidError("cannot move objects within the same bag")
	StorageBucketDoesntAcceptNewBags   = InvalidError("storage bucket doesn't accept new bags")
	StorageBucketIdCollectionsAreEmpty = InvalidError("storage bucket id collections are empty")
	StorageBucketIsBoundToBag          = InvalidError("storage bucket is already bound to a bag")
	StorageBucketIsNotBoundToBag       = InvalidError("storage bucket is not bound to a bag")
	UploadingBlocked                   = InvalidError("uploading of new objects is blocked")
	ZeroObjectSize                     = InvalidError("zero object size")
)

// internal consistency errors
var (
	RecordTruncated  = InternalError("record is truncated")
	VoucherUnderflow = InternalError("voucher decrease exceeds current usage")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e BalanceError) Error() string    { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e InternalError) Error() string   { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LimitError) Error() string      { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e StateError) Error() string      { return string(e) }

// determine the class of an error
func IsErrBalance(e error) bool    { _, ok := e.(BalanceError); return ok }
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInternal(e error) bool   { _, ok := e.(InternalError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrLimit(e error) bool      { _, ok := e.(LimitError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrState(e error) bool      { _, ok := e.(StateError); return ok }
