package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethdb/leveldb"
	"github.com/urfave/cli/v2"

	"github.com/heliosprotocol/go-helios/chainhead"
	ctypes "github.com/heliosprotocol/go-helios/core/types"
	"github.com/heliosprotocol/go-helios/kvstore"
)

var dataDirFlag = &cli.StringFlag{
	Name:     "datadir",
	Usage:    "data directory holding the chain-head database",
	Required: true,
}

// openStore opens the on-disk chain-head database the same way mive opens
// its chain database, minus the freezer and full node stack this tool has
// no use for.
func openStore(ctx *cli.Context) (kvstore.Store, func() error, error) {
	db, err := leveldb.New(ctx.String("datadir"), 16, 16, clientIdentifier, false)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", ctx.String("datadir"), err)
	}
	return kvstore.Wrap(db), db.Close, nil
}

var headCommand = &cli.Command{
	Name:      "head",
	Usage:     "print a wallet's current chain-head hash",
	ArgsUsage: "<address>",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return fmt.Errorf("head requires exactly one address argument")
		}
		store, closeFn, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		addr := common.HexToAddress(ctx.Args().Get(0))
		hash, found, err := chainhead.GetChainHeadHash(store, chainhead.SystemClock{}, addr.Bytes())
		if err != nil {
			return err
		}
		if !found {
			fmt.Println("<absent>")
			return nil
		}
		fmt.Println(hash.Hex())
		return nil
	},
}

var headAtCommand = &cli.Command{
	Name:      "head-at",
	Usage:     "print a wallet's chain-head hash as of a past window",
	ArgsUsage: "<address> <timestamp>",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 2 {
			return fmt.Errorf("head-at requires an address and a timestamp argument")
		}
		store, closeFn, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		addr := common.HexToAddress(ctx.Args().Get(0))
		ts, err := chainhead.ParseUint256Timestamp(ctx.Args().Get(1))
		if err != nil {
			return err
		}
		hash, found, err := chainhead.GetChainHeadHashAtTimestamp(store, chainhead.SystemClock{}, addr.Bytes(), ts)
		if err != nil {
			return err
		}
		if !found {
			fmt.Println("<absent>")
			return nil
		}
		fmt.Println(hash.Hex())
		return nil
	},
}

var ringCommand = &cli.Command{
	Name:  "ring",
	Usage: "dump the historical root ring",
	Action: func(ctx *cli.Context) error {
		store, closeFn, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		ring, found, err := chainhead.GetHistoricalRootHashes(store)
		if err != nil {
			return err
		}
		if !found {
			fmt.Println("<absent>")
			return nil
		}
		for _, e := range ring {
			fmt.Printf("%d\t%s\n", e.Window, e.Root.Hex())
		}
		return nil
	},
}

var windowCommand = &cli.Command{
	Name:      "window",
	Usage:     "dump a chronological window's (timestamp, block hash) pairs",
	ArgsUsage: "<window>",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return fmt.Errorf("window requires exactly one window-timestamp argument")
		}
		store, closeFn, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		w, err := chainhead.ParseUint256Timestamp(ctx.Args().Get(0))
		if err != nil {
			return err
		}
		entries, found, err := chainhead.LoadChronologicalWindow(store, ctypes.Window(w))
		if err != nil {
			return err
		}
		if !found {
			fmt.Println("<absent>")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%d\t%s\n", e.Timestamp, e.Hash.Hex())
		}
		return nil
	},
}
