package domain

import "errors"

var (
	// ErrAssetNotFound is returned when an asset id does not exist in the store
	ErrAssetNotFound = errors.New("asset not found")

	// ErrUserNotFound is returned when a user id does not exist in the store
	ErrUserNotFound = errors.New("user not found")

	// ErrNotSeller is returned when a caller attempts a seller-only mutation on
	// an asset they do not own
	ErrNotSeller = errors.New("caller is not the asset seller")

	// ErrAlreadyTokenized is returned when tokenization is attempted on an asset
	// that already carries an on-chain id
	ErrAlreadyTokenized = errors.New("asset already tokenized")

	// ErrOnChainAssetNotFound is returned when the contract has no record for a
	// given on-chain id
	ErrOnChainAssetNotFound = errors.New("asset not found on chain")

	// ErrTransactionNotFound is returned when a transaction hash is unknown to
	// the chain (distinct from a transaction that is still pending)
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrTransactionFailed is returned when a referenced transaction reverted
	// on chain and cannot back a tokenization record
	ErrTransactionFailed = errors.New("transaction failed on chain")

	// ErrContractNotDeployed is returned when the configured contract address
	// has no code
	ErrContractNotDeployed = errors.New("contract not deployed")

	// ErrOracleUnavailable is returned when the price feed cannot be read
	ErrOracleUnavailable = errors.New("price oracle unavailable")

	// ErrChainUnavailable is returned when an on-chain read fails or times out
	// for transport reasons (the resource may exist but is unreachable)
	ErrChainUnavailable = errors.New("chain unavailable")

	// ErrEstimationFailed is returned when the gas estimation call itself
	// reverts, typically due to invalid tokenize parameters
	ErrEstimationFailed = errors.New("gas estimation failed")
)
