package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/propchain/propchain-api/internal/adapter"
	"github.com/propchain/propchain-api/internal/domain"
	"github.com/propchain/propchain-api/internal/logger"
)

// landContractABI covers the read surface of the land token contract
const landContractABI = `[
	{"constant":true,"inputs":[{"name":"landId","type":"uint256"}],"name":"getLandDetails","outputs":[{"name":"seller","type":"address"},{"name":"metadataHash","type":"string"},{"name":"totalTokens","type":"uint256"},{"name":"availableTokens","type":"uint256"},{"name":"pricePerTokenInUSD","type":"uint256"},{"name":"isActive","type":"bool"}],"payable":false,"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"landId","type":"uint256"}],"name":"getOwnershipDistribution","outputs":[{"name":"holders","type":"address[]"},{"name":"percentages","type":"uint256[]"}],"payable":false,"stateMutability":"view","type":"function"}
]`

// priceFeedABI covers the Chainlink aggregator read surface
const priceFeedABI = `[
	{"constant":true,"inputs":[],"name":"latestRoundData","outputs":[{"name":"roundId","type":"uint80"},{"name":"answer","type":"int256"},{"name":"startedAt","type":"uint256"},{"name":"updatedAt","type":"uint256"},{"name":"answeredInRound","type":"uint80"}],"payable":false,"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"payable":false,"stateMutability":"view","type":"function"}
]`

// ChainReader reads the land token contract and the price oracle.
// It never submits transactions; signing stays client-side.
type ChainReader interface {
	// GetUSDQuote reads the latest native/USD price from the oracle feed.
	// Returns domain.ErrOracleUnavailable when the feed cannot be read.
	GetUSDQuote(ctx context.Context) (*domain.PriceQuote, error)

	// IsContractDeployed checks whether the land contract has code at its
	// configured address
	IsContractDeployed(ctx context.Context) (bool, error)

	// GetOnChainAsset reads the contract's record for one asset. Returns
	// domain.ErrOnChainAssetNotFound for a revert or zero seller, and
	// domain.ErrChainUnavailable for transport failures.
	GetOnChainAsset(ctx context.Context, onChainID uint64) (*domain.OnChainAsset, error)

	// GetOwnershipDistribution reads the holder table for one asset
	GetOwnershipDistribution(ctx context.Context, onChainID uint64) (*domain.OwnershipDistribution, error)

	// GetTransactionStatus resolves a transaction hash to pending/success/failed.
	// Returns domain.ErrTransactionNotFound when the node has never seen it.
	GetTransactionStatus(ctx context.Context, hash string) (*domain.TransactionState, error)

	// ContractAddress returns the configured land contract address
	ContractAddress() string

	// ChainID returns the configured chain id
	ChainID() int64

	// Close closes the underlying connection
	Close()
}

// ClientConfig holds the chain reader configuration
type ClientConfig struct {
	ChainID          int64
	ContractAddress  string
	PriceFeedAddress string
	CallTimeout      time.Duration
	MaxRetries       uint64
}

type chainReader struct {
	cfg    ClientConfig
	client adapter.EthClient
	clock  adapter.Clock
}

// NewChainReader creates a chain reader over an Ethereum client connection
func NewChainReader(cfg ClientConfig, client adapter.EthClient, clock adapter.Clock) ChainReader {
	if cfg.CallTimeout == 0 {
		cfg.CallTimeout = 10 * time.Second
	}
	return &chainReader{cfg: cfg, client: client, clock: clock}
}

func (c *chainReader) ContractAddress() string {
	return c.cfg.ContractAddress
}

func (c *chainReader) ChainID() int64 {
	return c.cfg.ChainID
}

func (c *chainReader) Close() {
	c.client.Close()
}

// GetUSDQuote reads the latest round from the Chainlink feed with bounded
// retry. A non-positive answer is treated as an unusable feed.
func (c *chainReader) GetUSDQuote(ctx context.Context) (*domain.PriceQuote, error) {
	feedABI, err := abi.JSON(strings.NewReader(priceFeedABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	feedAddr := common.HexToAddress(c.cfg.PriceFeedAddress)

	var quote *domain.PriceQuote
	operation := func() error {
		callCtx, cancel := context.WithTimeout(ctx, c.cfg.CallTimeout)
		defer cancel()

		roundData, err := feedABI.Pack("latestRoundData")
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to pack data: %w", err))
		}

		roundResult, err := c.client.CallContract(callCtx, ethereum.CallMsg{
			To:   &feedAddr,
			Data: roundData,
		}, nil)
		if err != nil {
			logger.WarnCtx(ctx, "price feed read failed, retrying", zap.Error(err))
			return fmt.Errorf("failed to call price feed: %w", err)
		}

		roundValues, err := feedABI.Unpack("latestRoundData", roundResult)
		if err != nil || len(roundValues) != 5 {
			return backoff.Permanent(fmt.Errorf("failed to unpack round data: %w", err))
		}

		answer, ok := roundValues[1].(*big.Int)
		if !ok || answer.Sign() <= 0 {
			return backoff.Permanent(errors.New("price feed returned non-positive answer"))
		}
		updatedAt, ok := roundValues[3].(*big.Int)
		if !ok {
			return backoff.Permanent(errors.New("price feed returned malformed timestamp"))
		}

		decimalsData, err := feedABI.Pack("decimals")
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to pack data: %w", err))
		}

		decimalsResult, err := c.client.CallContract(callCtx, ethereum.CallMsg{
			To:   &feedAddr,
			Data: decimalsData,
		}, nil)
		if err != nil {
			logger.WarnCtx(ctx, "price feed decimals read failed, retrying", zap.Error(err))
			return fmt.Errorf("failed to call price feed: %w", err)
		}

		var decimals uint8
		if err := feedABI.UnpackIntoInterface(&decimals, "decimals", decimalsResult); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to unpack decimals: %w", err))
		}

		quote = &domain.PriceQuote{
			Mantissa:  answer,
			Decimals:  decimals,
			UpdatedAt: c.clock.Unix(updatedAt.Int64(), 0),
		}
		return nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.cfg.MaxRetries), ctx)
	if err := backoff.Retry(operation, b); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrOracleUnavailable, err.Error())
	}

	return quote, nil
}

// IsContractDeployed checks for code at the configured contract address
func (c *chainReader) IsContractDeployed(ctx context.Context) (bool, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.cfg.CallTimeout)
	defer cancel()

	code, err := c.client.CodeAt(callCtx, common.HexToAddress(c.cfg.ContractAddress), nil)
	if err != nil {
		return false, fmt.Errorf("%w: failed to read contract code: %s", domain.ErrChainUnavailable, err.Error())
	}

	return len(code) > 0, nil
}

// GetOnChainAsset reads getLandDetails for one asset id
func (c *chainReader) GetOnChainAsset(ctx context.Context, onChainID uint64) (*domain.OnChainAsset, error) {
	landABI, err := abi.JSON(strings.NewReader(landContractABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	data, err := landABI.Pack("getLandDetails", new(big.Int).SetUint64(onChainID))
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.cfg.CallTimeout)
	defer cancel()

	contractAddr := common.HexToAddress(c.cfg.ContractAddress)
	result, err := c.client.CallContract(callCtx, ethereum.CallMsg{
		To:   &contractAddr,
		Data: data,
	}, nil)
	if err != nil {
		if isRevertError(err) {
			return nil, domain.ErrOnChainAssetNotFound
		}
		return nil, fmt.Errorf("%w: failed to call contract: %s", domain.ErrChainUnavailable, err.Error())
	}

	values, err := landABI.Unpack("getLandDetails", result)
	if err != nil || len(values) != 6 {
		return nil, fmt.Errorf("failed to unpack land details: %w", err)
	}

	seller, ok := values[0].(common.Address)
	if !ok {
		return nil, errors.New("malformed seller address in land details")
	}
	// The contract returns zeroed storage for ids it has never assigned
	if seller == (common.Address{}) {
		return nil, domain.ErrOnChainAssetNotFound
	}

	metadataHash, _ := values[1].(string)
	totalTokens, _ := values[2].(*big.Int)
	availableTokens, _ := values[3].(*big.Int)
	pricePerToken, _ := values[4].(*big.Int)
	active, _ := values[5].(bool)

	return &domain.OnChainAsset{
		OnChainID:       onChainID,
		SellerAddress:   strings.ToLower(seller.Hex()),
		MetadataHash:    metadataHash,
		TotalTokens:     totalTokens,
		AvailableTokens: availableTokens,
		PricePerToken:   pricePerToken,
		Active:          active,
	}, nil
}

// GetOwnershipDistribution reads getOwnershipDistribution for one asset id
func (c *chainReader) GetOwnershipDistribution(ctx context.Context, onChainID uint64) (*domain.OwnershipDistribution, error) {
	landABI, err := abi.JSON(strings.NewReader(landContractABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	data, err := landABI.Pack("getOwnershipDistribution", new(big.Int).SetUint64(onChainID))
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.cfg.CallTimeout)
	defer cancel()

	contractAddr := common.HexToAddress(c.cfg.ContractAddress)
	result, err := c.client.CallContract(callCtx, ethereum.CallMsg{
		To:   &contractAddr,
		Data: data,
	}, nil)
	if err != nil {
		if isRevertError(err) {
			return nil, domain.ErrOnChainAssetNotFound
		}
		return nil, fmt.Errorf("%w: failed to call contract: %s", domain.ErrChainUnavailable, err.Error())
	}

	values, err := landABI.Unpack("getOwnershipDistribution", result)
	if err != nil || len(values) != 2 {
		return nil, fmt.Errorf("failed to unpack ownership distribution: %w", err)
	}

	addresses, ok := values[0].([]common.Address)
	if !ok {
		return nil, errors.New("malformed holder list in ownership distribution")
	}
	percentages, ok := values[1].([]*big.Int)
	if !ok {
		return nil, errors.New("malformed percentage list in ownership distribution")
	}
	if len(addresses) != len(percentages) {
		return nil, fmt.Errorf("ownership distribution length mismatch: %d holders, %d percentages",
			len(addresses), len(percentages))
	}

	holders := make([]string, 0, len(addresses))
	shares := make([]int64, 0, len(percentages))
	for i, addr := range addresses {
		if !percentages[i].IsInt64() || percentages[i].Sign() < 0 || percentages[i].Int64() > domain.BpsDenominator {
			return nil, fmt.Errorf("ownership share out of range for holder %s: %s", addr.Hex(), percentages[i].String())
		}
		holders = append(holders, strings.ToLower(addr.Hex()))
		shares = append(shares, percentages[i].Int64())
	}

	return &domain.OwnershipDistribution{
		OnChainID: onChainID,
		Holders:   holders,
		BpsShares: shares,
	}, nil
}

// GetTransactionStatus resolves a transaction hash against the node
func (c *chainReader) GetTransactionStatus(ctx context.Context, hash string) (*domain.TransactionState, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.cfg.CallTimeout)
	defer cancel()

	txHash := common.HexToHash(hash)
	tx, isPending, err := c.client.TransactionByHash(callCtx, txHash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("%w: failed to get transaction: %s", domain.ErrChainUnavailable, err.Error())
	}

	state := &domain.TransactionState{
		Hash:     txHash.Hex(),
		ValueWei: tx.Value(),
	}
	if to := tx.To(); to != nil {
		state.To = strings.ToLower(to.Hex())
	}
	if from, err := types.Sender(types.LatestSignerForChainID(big.NewInt(c.cfg.ChainID)), tx); err == nil {
		state.From = strings.ToLower(from.Hex())
	}

	if isPending {
		state.Status = domain.TxStatusPending
		return state, nil
	}

	receipt, err := c.client.TransactionReceipt(callCtx, txHash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			// Mined-but-no-receipt is a propagation race; treat as pending
			state.Status = domain.TxStatusPending
			return state, nil
		}
		return nil, fmt.Errorf("%w: failed to get receipt: %s", domain.ErrChainUnavailable, err.Error())
	}

	blockNumber := receipt.BlockNumber.Uint64()
	gasUsed := receipt.GasUsed
	state.BlockNumber = &blockNumber
	state.GasUsed = &gasUsed
	if receipt.Status == types.ReceiptStatusSuccessful {
		state.Status = domain.TxStatusSuccess
	} else {
		state.Status = domain.TxStatusFailed
	}

	return state, nil
}

// isRevertError reports whether a contract call failed by reverting rather
// than by transport failure
func isRevertError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "revert") || strings.Contains(msg, "invalid opcode")
}
