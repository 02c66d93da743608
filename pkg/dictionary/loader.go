/*
Loader assembles a Language from chunked binary dictionary files,
loaded lazily, with retries, by a channel-driven background loader,
in a format that carries word flags rather than bare frequency ranks.

Each chunk file follows the naming pattern

	dict_XXXX.bin
	(dict_0001.bin, dict_0002.bin, ...)

and holds a little-endian int32 entry count followed by that many
entries:

	uint16 wordLen
	wordLen bytes of word (already case-folded)
	uint32 flags  (trie.WordFlags)
	uint32 count  (corpus frequency, 0 if unknown)

Loading runs on a background goroutine reading from a buffered
channel so a caller's StartLoading never blocks on disk I/O; a failed
chunk is retried with a linear backoff up to maxRetries before being
abandoned.
*/
package dictionary

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/corvisa/spellsuggest/internal/logger"
	"github.com/corvisa/spellsuggest/pkg/trie"
)

// log is this subsystem's prefixed logger, distinguishing dictionary
// loading traces from the server's and the CLI's in a shared stream.
var log = logger.New("dictionary")

// ChunkInfo describes one chunk file found on disk.
type ChunkInfo struct {
	ID        int
	Filename  string
	WordCount int
}

// LoaderStats summarizes the loader's current progress.
type LoaderStats struct {
	TotalWords      int
	LoadedChunks    int
	AvailableChunks int
	IsLoading       bool
}

// Loader lazily loads dict_XXXX.bin chunks from a directory and
// compiles them into a Language via Builder.
type Loader struct {
	mu sync.RWMutex

	dirPath    string
	name       string
	maxWords   int
	maxRetries int

	chunkEntries    map[int][]WordEntry
	loadedChunks    map[int]bool
	errorCount      map[int]int
	availableChunks []ChunkInfo
	chunksCached    bool
	totalWords      int

	loadingCh chan int
	done      chan struct{}

	soundFold SoundFoldFunc
}

// NewLoader creates a loader reading chunk files from dirPath. A
// maxWords of 0 means "load everything available".
func NewLoader(dirPath, languageName string, maxWords int) *Loader {
	return &Loader{
		dirPath:      dirPath,
		name:         languageName,
		maxWords:     maxWords,
		maxRetries:   3,
		chunkEntries: make(map[int][]WordEntry),
		loadedChunks: make(map[int]bool),
		errorCount:   make(map[int]int),
		loadingCh:    make(chan int, 10),
		done:         make(chan struct{}),
	}
}

// SetSoundFold installs the phonetic fold the built Language will use.
func (ld *Loader) SetSoundFold(fn SoundFoldFunc) *Loader {
	ld.soundFold = fn
	return ld
}

// GetAvailable scans dirPath for dict_*.bin chunk files, cached after
// the first successful scan.
func (ld *Loader) GetAvailable() ([]ChunkInfo, error) {
	ld.mu.Lock()
	defer ld.mu.Unlock()

	if ld.chunksCached {
		return ld.availableChunks, nil
	}

	pattern := filepath.Join(ld.dirPath, "dict_*.bin")
	files, err := filepath.Glob(pattern)
	if err != nil {
		log.Errorf("failed to scan for chunk files: %v", err)
		return nil, err
	}

	var chunks []ChunkInfo
	for _, file := range files {
		basename := filepath.Base(file)
		if !strings.HasPrefix(basename, "dict_") || !strings.HasSuffix(basename, ".bin") {
			continue
		}
		idStr := strings.TrimSuffix(strings.TrimPrefix(basename, "dict_"), ".bin")
		chunkID, err := strconv.Atoi(idStr)
		if err != nil {
			continue
		}
		count, err := ld.readHeader(file)
		if err != nil {
			log.Warnf("failed to read header for chunk %s: %v", file, err)
		}
		chunks = append(chunks, ChunkInfo{ID: chunkID, Filename: file, WordCount: count})
	}
	sort.Slice(chunks, func(i, j int) bool { return chunks[i].ID < chunks[j].ID })

	ld.availableChunks = chunks
	ld.chunksCached = true
	return chunks, nil
}

func (ld *Loader) readHeader(filename string) (int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	var count int32
	if err := binary.Read(f, binary.LittleEndian, &count); err != nil {
		return 0, err
	}
	return int(count), nil
}

// StartLoading kicks off the background loader and queues chunks up
// to maxWords (or every chunk, if maxWords is 0).
func (ld *Loader) StartLoading() error {
	chunks, err := ld.GetAvailable()
	if err != nil {
		return err
	}
	if len(chunks) == 0 {
		return fmt.Errorf("no dictionary chunks found in %s", ld.dirPath)
	}

	go ld.backgroundLoader()

	wordsToLoad := ld.maxWords
	if wordsToLoad == 0 {
		for _, c := range chunks {
			wordsToLoad += c.WordCount
		}
	}
	loaded := 0
	for _, c := range chunks {
		if loaded >= wordsToLoad {
			break
		}
		select {
		case ld.loadingCh <- c.ID:
			log.Debugf("queued chunk %d for loading", c.ID)
		case <-time.After(100 * time.Millisecond):
			log.Warnf("loading queue full, dropping chunk %d", c.ID)
		}
		loaded += c.WordCount
	}
	return nil
}

func (ld *Loader) backgroundLoader() {
	for {
		select {
		case chunkID := <-ld.loadingCh:
			if err := ld.loadChunk(chunkID); err != nil {
				ld.mu.Lock()
				ld.errorCount[chunkID]++
				attempts := ld.errorCount[chunkID]
				ld.mu.Unlock()
				if attempts < ld.maxRetries {
					log.Debugf("retrying chunk %d (attempt %d/%d): %v", chunkID, attempts+1, ld.maxRetries, err)
					go func(id int) {
						time.Sleep(time.Duration(attempts) * time.Second)
						select {
						case ld.loadingCh <- id:
						case <-ld.done:
						}
					}(chunkID)
				} else {
					log.Errorf("chunk %d failed %d times, giving up: %v", chunkID, ld.maxRetries, err)
				}
			}
		case <-ld.done:
			return
		}
	}
}

// loadChunk reads one chunk file's entries into memory.
func (ld *Loader) loadChunk(chunkID int) error {
	ld.mu.Lock()
	if ld.loadedChunks[chunkID] {
		ld.mu.Unlock()
		return nil
	}
	ld.mu.Unlock()

	filename := filepath.Join(ld.dirPath, fmt.Sprintf("dict_%04d.bin", chunkID))
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("open chunk %d: %w", chunkID, err)
	}
	defer f.Close()
	reader := bufio.NewReader(f)

	var total int32
	if err := binary.Read(reader, binary.LittleEndian, &total); err != nil {
		return fmt.Errorf("read chunk %d header: %w", chunkID, err)
	}

	entries := make([]WordEntry, 0, total)
	for i := 0; i < int(total); i++ {
		var wordLen uint16
		if err := binary.Read(reader, binary.LittleEndian, &wordLen); err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("read word length in chunk %d: %w", chunkID, err)
		}
		wordBytes := make([]byte, wordLen)
		if _, err := io.ReadFull(reader, wordBytes); err != nil {
			return fmt.Errorf("read word in chunk %d: %w", chunkID, err)
		}
		var flags uint32
		if err := binary.Read(reader, binary.LittleEndian, &flags); err != nil {
			return fmt.Errorf("read flags in chunk %d: %w", chunkID, err)
		}
		var count uint32
		if err := binary.Read(reader, binary.LittleEndian, &count); err != nil {
			return fmt.Errorf("read count in chunk %d: %w", chunkID, err)
		}
		entries = append(entries, WordEntry{
			Word:  string(wordBytes),
			Flags: trie.WordFlags(flags),
			Count: int(count),
		})
	}

	ld.mu.Lock()
	ld.chunkEntries[chunkID] = entries
	ld.loadedChunks[chunkID] = true
	ld.totalWords += len(entries)
	ld.mu.Unlock()
	log.Debugf("loaded chunk %d: %d words", chunkID, len(entries))
	return nil
}

// Stop ends the background loading goroutine.
func (ld *Loader) Stop() { close(ld.done) }

// Stats reports current loading progress.
func (ld *Loader) Stats() LoaderStats {
	ld.mu.RLock()
	defer ld.mu.RUnlock()
	return LoaderStats{
		TotalWords:      ld.totalWords,
		LoadedChunks:    len(ld.loadedChunks),
		AvailableChunks: len(ld.availableChunks),
		IsLoading:       len(ld.loadingCh) > 0,
	}
}

// Build compiles every chunk loaded so far into a Language. Call
// after StartLoading has had time to run, or after waiting on Stats
// to report the expected word count.
func (ld *Loader) Build() *Language {
	ld.mu.RLock()
	defer ld.mu.RUnlock()

	ids := make([]int, 0, len(ld.chunkEntries))
	for id := range ld.chunkEntries {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	b := NewBuilder(ld.name)
	if ld.soundFold != nil {
		b.SetSoundFold(ld.soundFold)
	}
	for _, id := range ids {
		for _, e := range ld.chunkEntries[id] {
			b.AddWord(e.Word, e.Flags, e.Count)
		}
	}
	b.EnableSoundTrie()
	return b.Build()
}
