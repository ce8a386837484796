package testutil

import (
	"testing/fstest"
)

// BlogFS returns a small blog tree with three published posts and one
// draft.
func BlogFS() fstest.MapFS {
	return fstest.MapFS{
		"type-safe-ui-testing.md": {Data: []byte(`---
title: Type-Safe UI Testing
description: Generate tests from decorated components
date: 2025-03-10
author: Supernal Team
tags: [testing, typescript]
---
Name every component once.

Tests, docs and agents share the same names.
`)},
		"less-boilerplate.md": {Data: []byte(`---
title: 80% Less Boilerplate
date: 2025-04-02
tags: [productivity]
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
		"draft.md": {Data: []byte("---\ntitle: Unfinished\ndraft: true\n---\nwip\n")},
	}
}
