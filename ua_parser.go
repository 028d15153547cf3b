package tracker

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/ua-parser/uap-go/uaparser"
)

const uaCacheSize = 512

// uaParser wraps uap-go behind the same lazy-setup contract as the country
// lookup: the regex set is loaded on a background goroutine so subject
// construction never blocks on it. Parse results are memoized per UA string.
type uaParser struct {
	parser  *uaparser.Parser
	cache   *lru.Cache
	wg      sync.WaitGroup
	options UAParserOptions
	mu      sync.RWMutex
}

func newUAParser(options UAParserOptions) *uaParser {
	uaParser := &uaParser{
		parser:  nil,
		wg:      sync.WaitGroup{},
		options: options,
	}
	uaParser.cache, _ = lru.New(uaCacheSize)
	uaParser.delayedSetup()
	return uaParser
}

func (u *uaParser) isReady() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.parser != nil
}

func (u *uaParser) delayedSetup() {
	if u.options.Disabled {
		return
	}
	u.wg.Add(1)
	go func() {
		defer u.wg.Done()
		u.mu.Lock()
		u.parser = uaparser.NewFromSaved()
		u.mu.Unlock()
	}()
}

func (u *uaParser) init() {
	if !u.options.LazyLoad {
		u.ensureLoaded()
	}
}

func (u *uaParser) ensureLoaded() {
	if u.options.Disabled {
		return
	}
	u.wg.Wait()
}

func (u *uaParser) parse(ua string) *uaparser.Client {
	if u.options.Disabled || ua == "" {
		return nil
	}
	if u.options.EnsureLoaded {
		u.ensureLoaded()
	}
	if !u.isReady() {
		return nil
	}
	if cached, ok := u.cache.Get(ua); ok {
		return cached.(*uaparser.Client)
	}
	client := u.parser.Parse(ua)
	u.cache.Add(ua, client)
	return client
}
