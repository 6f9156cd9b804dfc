package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/Peritract/meld/internal/engine"
	"github.com/Peritract/meld/internal/storage"
)

func main() {
	if len(os.Args) < 3 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "header":
		rep, err := loadReplay(os.Args[2])
		if err != nil {
			fmt.Printf("Invalid replay: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("area:     %d\n", rep.LevelID)
		fmt.Printf("seed:     %d\n", rep.Seed)
		fmt.Printf("recorded: %s\n", time.Unix(rep.Timestamp, 0).Format(time.RFC3339))
		fmt.Printf("actions:  %d\n", len(rep.Actions))
	case "actions":
		rep, err := loadReplay(os.Args[2])
		if err != nil {
			fmt.Printf("Invalid replay: %v\n", err)
			os.Exit(1)
		}
		for _, a := range rep.Actions {
			fmt.Printf("%5d  %-14s %s\n", a.Round, a.Action, a.Payload)
		}
	case "saves":
		db, err := storage.OpenAndMigrate(os.Args[2])
		if err != nil {
			fmt.Printf("Cannot open database: %v\n", err)
			os.Exit(1)
		}
		recs, err := storage.NewSQLiteRepository(db).List()
		if err != nil {
			fmt.Printf("Cannot list saves: %v\n", err)
			os.Exit(1)
		}
		for _, r := range recs {
			fmt.Printf("%-20s %-12s round %-6d seed %-20d %s\n",
				r.Name, r.AreaName, r.Round, r.Seed, r.UpdatedAt.Format(time.RFC3339))
		}
	default:
		printHelp()
	}
}

func loadReplay(path string) (*engine.Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return storage.ReadReplay(bufio.NewReader(f))
}

func printHelp() {
	fmt.Println(`Replay Utility - просмотр реплеев и сохранений
Commands:
  header <file.mlrp>   - заголовок реплея: зона, сид, время записи
  actions <file.mlrp>  - записанные действия игрока по раундам
  saves <meld.db>      - слоты сохранений в базе`)
}
