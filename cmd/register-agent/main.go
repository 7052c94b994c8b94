package main

import (
	"context"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/puckdata/pkg/config"
)

// registryABI covers the single method this command calls.
const registryABI = `[{"inputs":[{"internalType":"string","name":"name","type":"string"},{"internalType":"string","name":"url","type":"string"}],"name":"register","outputs":[],"stateMutability":"nonpayable","type":"function"}]`

// main registers this service's agent identity on the on-chain registry.
// It runs once, sends a single transaction, and exits non-zero on any
// failure. There is deliberately no retry logic.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	if cfg.EthRPCURL == "" || cfg.AgentPrivateKey == "" || cfg.RegistryAddress == "" {
		logrus.Fatal("ETH_RPC_URL, AGENT_PRIVATE_KEY and AGENT_REGISTRY_ADDRESS must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := ethclient.DialContext(ctx, cfg.EthRPCURL)
	if err != nil {
		logrus.Fatalf("Failed to connect to RPC endpoint: %v", err)
	}
	defer client.Close()

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.AgentPrivateKey, "0x"))
	if err != nil {
		logrus.Fatalf("Failed to parse agent private key: %v", err)
	}
	from := crypto.PubkeyToAddress(key.PublicKey)

	chainID, err := client.ChainID(ctx)
	if err != nil {
		logrus.Fatalf("Failed to fetch chain ID: %v", err)
	}

	balance, err := client.BalanceAt(ctx, from, nil)
	if err != nil {
		logrus.Fatalf("Failed to fetch balance for %s: %v", from.Hex(), err)
	}
	if balance.Sign() == 0 {
		logrus.Fatalf("Account %s has no funds to pay for gas", from.Hex())
	}
	logrus.Infof("Registering as %s (balance %s wei)", from.Hex(), balance.String())

	parsed, err := abi.JSON(strings.NewReader(registryABI))
	if err != nil {
		logrus.Fatalf("Failed to parse registry ABI: %v", err)
	}

	registry := common.HexToAddress(cfg.RegistryAddress)
	contract := bind.NewBoundContract(registry, parsed, client, client, client)

	auth, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		logrus.Fatalf("Failed to build transactor: %v", err)
	}
	auth.Context = ctx
	auth.Value = big.NewInt(0)

	tx, err := contract.Transact(auth, "register", cfg.AgentName, cfg.AgentURL)
	if err != nil {
		logrus.Fatalf("Failed to send registration transaction: %v", err)
	}
	logrus.Infof("Sent registration tx %s, waiting for confirmation...", tx.Hash().Hex())

	receipt, err := bind.WaitMined(ctx, client, tx)
	if err != nil {
		logrus.Fatalf("Failed waiting for transaction %s: %v", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		logrus.Fatalf("Registration transaction %s reverted", tx.Hash().Hex())
	}

	logrus.Infof("Agent %q registered at %s (block %d)", cfg.AgentName, registry.Hex(), receipt.BlockNumber.Uint64())
}
