//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c -fobjc-arc
#cgo LDFLAGS: -framework ScreenCaptureKit -framework CoreGraphics -framework Foundation
#import <Foundation/Foundation.h>
#import <CoreGraphics/CoreGraphics.h>
#import <ScreenCaptureKit/ScreenCaptureKit.h>
#include <stdint.h>
#include <stdlib.h>
#include <string.h>

typedef struct {
	uint32_t id;
} scap_display;

typedef struct {
	uint32_t id;
	char *title;
	int active;
} scap_window;

typedef struct {
	scap_display *displays;
	int display_count;
	scap_window *windows;
	int window_count;
	char *err;
} scap_content;

static char *scap_cstring(NSString *s) {
	if (s == nil || [s length] == 0) {
		return NULL;
	}
	const char *u = [s UTF8String];
	return u ? strdup(u) : NULL;
}

static int scap_shareable_content(scap_content *out) {
	memset(out, 0, sizeof(*out));
	if (@available(macOS 12.3, *)) {
		@autoreleasepool {
			__block SCShareableContent *content = nil;
			__block NSError *error = nil;
			dispatch_semaphore_t done = dispatch_semaphore_create(0);
			[SCShareableContent getShareableContentWithCompletionHandler:^(SCShareableContent *c, NSError *e) {
				content = c;
				error = e;
				dispatch_semaphore_signal(done);
			}];
			dispatch_semaphore_wait(done, DISPATCH_TIME_FOREVER);

			if (content == nil) {
				NSString *msg = error ? [error localizedDescription] : @"no shareable content";
				out->err = scap_cstring(msg);
				return -1;
			}

			NSArray<SCDisplay *> *displays = content.displays;
			out->display_count = (int)[displays count];
			if (out->display_count > 0) {
				out->displays = calloc(out->display_count, sizeof(scap_display));
				for (int i = 0; i < out->display_count; i++) {
					out->displays[i].id = displays[i].displayID;
				}
			}

			NSArray<SCWindow *> *windows = content.windows;
			out->window_count = (int)[windows count];
			if (out->window_count > 0) {
				out->windows = calloc(out->window_count, sizeof(scap_window));
				for (int i = 0; i < out->window_count; i++) {
					SCWindow *w = windows[i];
					out->windows[i].id = w.windowID;
					out->windows[i].title = scap_cstring(w.title);
					if (@available(macOS 13.1, *)) {
						out->windows[i].active = w.isActive ? 1 : 0;
					} else {
						out->windows[i].active = w.isOnScreen ? 1 : 0;
					}
				}
			}
			return 0;
		}
	}
	out->err = strdup("ScreenCaptureKit requires macOS 12.3 or newer");
	return -1;
}

static void scap_free_content(scap_content *c) {
	for (int i = 0; i < c->window_count; i++) {
		free(c->windows[i].title);
	}
	free(c->windows);
	free(c->displays);
	free(c->err);
	memset(c, 0, sizeof(*c));
}

static int scap_display_mode(uint32_t id, uint64_t *pixel_width, uint64_t *width) {
	CGDisplayModeRef mode = CGDisplayCopyDisplayMode(id);
	if (mode == NULL) {
		return -1;
	}
	*pixel_width = CGDisplayModeGetPixelWidth(mode);
	*width = CGDisplayModeGetWidth(mode);
	CGDisplayModeRelease(mode);
	return 0;
}

static uint32_t scap_main_display(void) {
	return CGMainDisplayID();
}

static int scap_preflight(void) {
	return CGPreflightScreenCaptureAccess() ? 1 : 0;
}

static int scap_request(void) {
	return CGRequestScreenCaptureAccess() ? 1 : 0;
}
*/
import "C"
import (
	"errors"
	"fmt"
	"os/exec"
	"unsafe"

	"github.com/mj1618/scap/internal/platform"
)

// MinVersion is the first macOS release with ScreenCaptureKit. It keeps the
// trailing newline printed by sw_vers because versions are compared as raw bytes.
var MinVersion = []byte("12.3\n")

// Source implements platform.Source for macOS.
type Source struct{}

var _ platform.Source = (*Source)(nil)

// NewSource creates a new macOS source.
func NewSource() *Source {
	return &Source{}
}

// OSVersion returns the raw output of `sw_vers -productVersion`, trailing newline included.
func (s *Source) OSVersion() ([]byte, error) {
	out, err := exec.Command("sw_vers", "-productVersion").Output()
	if err != nil {
		return nil, fmt.Errorf("sw_vers: %w", err)
	}
	return out, nil
}

func (s *Source) Preflight() bool {
	return C.scap_preflight() != 0
}

// Request may show the system consent dialog. The OS decides whether to
// prompt; after a denial it returns false without prompting again.
func (s *Source) Request() bool {
	return C.scap_request() != 0
}

// ShareableContent queries SCShareableContent and blocks until the OS replies.
func (s *Source) ShareableContent() (platform.Content, error) {
	var cc C.scap_content
	rc := C.scap_shareable_content(&cc)
	defer C.scap_free_content(&cc)

	if rc != 0 {
		msg := "unknown error"
		if cc.err != nil {
			msg = C.GoString(cc.err)
		}
		return platform.Content{}, fmt.Errorf("ScreenCaptureKit: %s", msg)
	}

	content := platform.Content{
		Displays: make([]platform.RawDisplay, 0, int(cc.display_count)),
		Windows:  make([]platform.RawWindow, 0, int(cc.window_count)),
	}
	if cc.display_count > 0 {
		for _, d := range unsafe.Slice(cc.displays, int(cc.display_count)) {
			content.Displays = append(content.Displays, platform.RawDisplay{ID: uint32(d.id)})
		}
	}
	if cc.window_count > 0 {
		for _, w := range unsafe.Slice(cc.windows, int(cc.window_count)) {
			title := ""
			if w.title != nil {
				title = C.GoString(w.title)
			}
			content.Windows = append(content.Windows, platform.RawWindow{
				ID:     uint32(w.id),
				Title:  title,
				Active: w.active != 0,
			})
		}
	}
	return content, nil
}

func (s *Source) MainDisplayID() (uint32, error) {
	return uint32(C.scap_main_display()), nil
}

func (s *Source) DisplayMode(displayID uint32) (platform.DisplayMode, error) {
	var pixelWidth, width C.uint64_t
	if C.scap_display_mode(C.uint32_t(displayID), &pixelWidth, &width) != 0 {
		return platform.DisplayMode{}, errors.New("CGDisplayCopyDisplayMode returned no mode")
	}
	return platform.DisplayMode{
		PixelWidth: uint64(pixelWidth),
		Width:      uint64(width),
	}, nil
}
