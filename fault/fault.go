// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ArithmeticError GenericError
type AuthorityError GenericError
type CapacityError GenericError
type ExistsError GenericError
type IdentityError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type OwnerError GenericError
type ProcessError GenericError
type ReferenceError GenericError

// replay
var (
	AlreadyInitialised = ExistsError("already initialised")
	AlreadyInitialized = ExistsError("record is already initialized")
	AlreadyValidated   = ExistsError("safety deposit box is already validated")
)

// missing records
var (
	Uninitialized = NotFoundError("record is uninitialized")
)

// ownership
var (
	OwnerMismatch        = OwnerError("record owner does not match expected program")
	TokenProgramMismatch = OwnerError("mint is not owned by the registered token program")
)

// identity and derivation
var (
	CampaignVaultMismatch              = IdentityError("campaign manager vault does not match supplied vault")
	DerivedAddressMismatch             = IdentityError("derived address does not match supplied address")
	InvalidEditionAddress              = IdentityError("edition address does not match derived edition")
	OriginalAuthorityLookupKeyMismatch = IdentityError("original authority lookup address does not match derivation")
	SafetyDepositBoxVaultMismatch      = IdentityError("safety deposit box does not belong to vault")
	StoreMismatch                      = IdentityError("campaign manager store does not match supplied store")
	TokenMetadataMismatch              = IdentityError("token metadata program does not match store")
	TokenMetadataProgramMismatch       = IdentityError("token metadata program does not match store program")
	VaultAuthorityMismatch             = IdentityError("vault authority is not the campaign manager")
)

// cross references
var (
	MetadataMismatch = ReferenceError("safety deposit box mint does not match metadata mint")
	MintMismatch     = ReferenceError("safety deposit box mint does not match supplied mint")
	OrderMismatch    = ReferenceError("safety deposit config order does not match box order")
)

// authorisation
var (
	AuthorityIsNotSigner          = AuthorityError("campaign authority is not a signer")
	AuthorityMismatch             = AuthorityError("campaign authority does not match supplied authority")
	CreatorHasNotVerifiedMetadata = AuthorityError("creator has not verified metadata")
	InvalidCapability             = AuthorityError("derived signer capability is not valid")
	NoValidCreator                = AuthorityError("no valid whitelisted or verified creator")
	PayerIsNotSigner              = AuthorityError("payer is not a signer")
	UpdateAuthorityIncorrect      = AuthorityError("update authority is incorrect")
	UpdateAuthorityIsNotSigner    = AuthorityError("update authority is not a signer")
	WhitelistedCreatorInactive    = AuthorityError("whitelisted creator is inactive")
)

// arithmetic
var (
	NumericalOverflow      = ArithmeticError("numerical overflow")
	ValidatedCountExceeded = ArithmeticError("validated box count exceeds vault box count")
)

// capacity
var (
	StoreIsEmpty = CapacityError("token store does not hold exactly one token")
)

// malformed data - keep in alphabetic order
var (
	CannotDecodeAddress  = InvalidError("cannot decode address")
	InvalidAddressLength = InvalidError("invalid address length")
	InvalidAssetClass    = InvalidError("invalid asset class")
	InvalidCount         = InvalidError("invalid count")
	InvalidMint          = InvalidError("mint is not a valid initialised mint")
	InvalidRecordType    = InvalidError("record has unexpected type")
	InvalidSeeds         = InvalidError("seeds produce an address on the curve")
	NoViableBump         = InvalidError("no viable bump seed for derivation")
	RecordLength         = InvalidError("record has incorrect length")
	SeedTooLong          = InvalidError("seed is too long")
	StringTooLong        = InvalidError("string is too long")
	TooManySeeds         = InvalidError("too many seeds")
	UnknownRecord        = InvalidError("unknown record tag")
)

// infrastructure
var (
	DatabaseIsNotSet      = ProcessError("database is not set")
	InvalidLoggerChannel  = ProcessError("invalid logger channel")
	MissingConfiguration  = ProcessError("missing configuration")
	TransactionIsNotBegun = ProcessError("transaction is not begun")
	TransactionInUse      = ProcessError("transaction already in use")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ArithmeticError) Error() string { return string(e) }
func (e AuthorityError) Error() string  { return string(e) }
func (e CapacityError) Error() string   { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e IdentityError) Error() string   { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e OwnerError) Error() string      { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e ReferenceError) Error() string  { return string(e) }

// determine the class of an error
func IsErrArithmetic(e error) bool { _, ok := e.(ArithmeticError); return ok }
func IsErrAuthority(e error) bool  { _, ok := e.(AuthorityError); return ok }
func IsErrCapacity(e error) bool   { _, ok := e.(CapacityError); return ok }
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrIdentity(e error) bool   { _, ok := e.(IdentityError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrOwner(e error) bool      { _, ok := e.(OwnerError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrReference(e error) bool  { _, ok := e.(ReferenceError); return ok }
