//go:build gtk

package window

import (
	"fmt"
	"github.com/gotk3/gotk3/gtk"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"path/filepath"
	"runtime"
)

func init() {
	// GTK must be driven from the main thread.
	runtime.LockOSThread()
}

// Available reports whether Show can open windows.
func Available() bool { return true }

// Show opens one window per image, and blocks until all of them are closed.
// It must be called from the main goroutine.
func Show(title string, imagePaths ...string) error {
	if len(imagePaths) == 0 {
		return nil
	}
	gtk.Init(nil)
	open := len(imagePaths)
	for _, imagePath := range imagePaths {
		win, err := gtk.WindowNew(gtk.WINDOW_TOPLEVEL)
		if err != nil {
			return errors.Wrap(err, "unable to create window")
		}
		win.SetTitle(fmt.Sprintf("%s: %s", title, filepath.Base(imagePath)))
		img, err := gtk.ImageNewFromFile(imagePath)
		if err != nil {
			return errors.Wrapf(err, "unable to load image %q", imagePath)
		}
		win.Add(img)
		win.Connect("destroy", func() {
			open--
			klog.V(1).Infof("window for %s closed, %d still open", imagePath, open)
			if open == 0 {
				gtk.MainQuit()
			}
		})
		win.ShowAll()
	}
	gtk.Main()
	return nil
}
