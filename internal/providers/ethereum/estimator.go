package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/propchain/propchain-api/internal/adapter"
	"github.com/propchain/propchain-api/internal/domain"
)

// tokenizeABI covers the single write entrypoint we estimate against
const tokenizeABI = `[
	{"constant":false,"inputs":[{"name":"metadataHash","type":"string"},{"name":"totalTokens","type":"uint256"},{"name":"pricePerTokenInUSD","type":"uint256"},{"name":"rentPerTokenPerMonth","type":"uint256"}],"name":"tokenizeLand","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"}
]`

// ChainEstimator estimates the gas cost of a prospective tokenizeLand call.
// Estimates are advisory; the wallet re-estimates at submission time.
type ChainEstimator interface {
	// EstimateTokenizeCost returns gas limit, gas price, and total native cost
	// for a tokenizeLand call. Returns domain.ErrContractNotDeployed when the
	// contract has no code, and domain.ErrEstimationFailed when the node
	// rejects the simulated call.
	EstimateTokenizeCost(ctx context.Context, params domain.TokenizeParams) (*domain.GasEstimate, error)
}

// EstimatorConfig holds the chain estimator configuration
type EstimatorConfig struct {
	ContractAddress string
	CallTimeout     time.Duration
}

type chainEstimator struct {
	cfg    EstimatorConfig
	client adapter.EthClient
}

// NewChainEstimator creates a gas estimator over an Ethereum client connection
func NewChainEstimator(cfg EstimatorConfig, client adapter.EthClient) ChainEstimator {
	if cfg.CallTimeout == 0 {
		cfg.CallTimeout = 10 * time.Second
	}
	return &chainEstimator{cfg: cfg, client: client}
}

func (e *chainEstimator) EstimateTokenizeCost(ctx context.Context, params domain.TokenizeParams) (*domain.GasEstimate, error) {
	callCtx, cancel := context.WithTimeout(ctx, e.cfg.CallTimeout)
	defer cancel()

	contractAddr := common.HexToAddress(e.cfg.ContractAddress)

	// Fail fast before spending further calls on an undeployed contract
	code, err := e.client.CodeAt(callCtx, contractAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read contract code: %s", domain.ErrChainUnavailable, err.Error())
	}
	if len(code) == 0 {
		return nil, domain.ErrContractNotDeployed
	}

	parsedABI, err := abi.JSON(strings.NewReader(tokenizeABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	rent := params.RentPerTokenPerMonth
	if rent == nil {
		rent = big.NewInt(0)
	}

	data, err := parsedABI.Pack("tokenizeLand",
		params.MetadataHash,
		params.TotalTokens,
		params.PricePerTokenUSD,
		rent,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	msg := ethereum.CallMsg{
		From: common.HexToAddress(params.FromAddress),
		To:   &contractAddr,
		Data: data,
	}

	gasLimit, err := e.client.EstimateGas(callCtx, msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrEstimationFailed, err.Error())
	}

	gasPrice, err := e.client.SuggestGasPrice(callCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get gas price: %s", domain.ErrChainUnavailable, err.Error())
	}

	cost := new(big.Int).Mul(new(big.Int).SetUint64(gasLimit), gasPrice)

	return &domain.GasEstimate{
		GasLimit:    gasLimit,
		GasPriceWei: gasPrice,
		CostWei:     cost,
	}, nil
}
