package blog

import (
	"context"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"type-safe-ui-testing.md": {Data: []byte(`---
title: Type-Safe UI Testing
description: Generate tests from decorated components
date: 2025-03-10
author: Supernal Team
tags: [testing, typescript]
---
First paragraph about contracts.

Second paragraph about generated tests.
`)},
		"2025/less-boilerplate.md": {Data: []byte(`---
title: 80% Less Boilerplate
slug: less-boilerplate
date: 2025-04-02
tags: [productivity, testing]
---
Write less glue code.
`)},
		"chat-commands.md": {Data: []byte(`---
title: Chat Commands for Any App
description: Natural-language commands mapped to tools
date: 2025-01-15
tags: [chat, tools]
---
Say "toggle dark mode".
`)},
		"draft.md": {Data: []byte(`---
title: Unfinished
draft: true
---
wip
`)},
		"broken.md":         {Data: []byte("---\ntitle: [unclosed\n---\nbody\n")},
		"no-frontmatter.md": {Data: []byte("# just markdown\n")},
		"bad-date.md":       {Data: []byte("---\ntitle: Bad Date\ndate: yesterday\n---\nbody\n")},
		"notes.txt":         {Data: []byte("ignored")},
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc := NewServiceFS(testFS(), slog.Default())
	require.NoError(t, svc.Refresh(context.Background()))
	return svc
}
