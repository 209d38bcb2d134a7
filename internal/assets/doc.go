// Package assets provides the script snippets and the font rule injected
// into exported mind-map pages.
//
// The built-in copies are embedded in the binary. An override directory
// with the same layout replaces them file by file:
//
//	{dir}/
//	├── snippets/
//	│   ├── theme-detect.js   # follows the embedding site's light/dark mode
//	│   └── autofit.js        # refits the map on expand/collapse
//	└── styles/
//	    └── font.css          # replacement root font-family rule
//
// Override files are read through an os.Root, so a symlink pointing
// outside the directory fails instead of being followed.
package assets
