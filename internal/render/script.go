package render

// GenerateClientScript returns js/main.js. The script is identical for
// every store: anything store-specific (phone numbers, messages) is
// carried as data attributes on the elements it reads.
func GenerateClientScript() string {
	return clientScript
}

// clientScript runs inside the exported pages with no framework
// runtime: search over rendered cards, smooth scroll, FAQ accordion,
// lazy images, one-shot fade-in animation, WhatsApp checkout, and the
// scroll-to-top control.
const clientScript = `(function() {
  "use strict";

  // ===== Debounced product search (home page card filter) =====
  var searchInput = document.getElementById("product-search");
  if (searchInput) {
    var debounce;
    searchInput.addEventListener("input", function() {
      clearTimeout(debounce);
      debounce = setTimeout(function() {
        var query = searchInput.value.trim().toLowerCase();
        document.querySelectorAll(".product-card").forEach(function(card) {
          var hay = (card.getAttribute("data-name") + " " +
            (card.getAttribute("data-description") || "") + " " +
            (card.getAttribute("data-category") || "")).toLowerCase();
          card.style.display = !query || hay.indexOf(query) !== -1 ? "" : "none";
        });
      }, 200);
    });
  }

  // ===== Smooth scroll for in-page anchors =====
  document.querySelectorAll('a[href^="#"]').forEach(function(link) {
    link.addEventListener("click", function(e) {
      var id = link.getAttribute("href").slice(1);
      var target = id && document.getElementById(id);
      if (target) {
        e.preventDefault();
        target.scrollIntoView({ behavior: "smooth" });
      }
    });
  });

  // ===== FAQ accordion =====
  document.querySelectorAll(".faq-question").forEach(function(btn) {
    btn.addEventListener("click", function() {
      var item = btn.parentElement;
      var answer = item.querySelector(".faq-answer");
      var open = item.classList.toggle("open");
      btn.setAttribute("aria-expanded", open ? "true" : "false");
      answer.style.maxHeight = open ? answer.scrollHeight + "px" : "";
    });
  });

  // ===== Lazy image loading =====
  var lazyImages = document.querySelectorAll("img[data-src]");
  if ("IntersectionObserver" in window) {
    var imageObserver = new IntersectionObserver(function(entries) {
      entries.forEach(function(entry) {
        if (!entry.isIntersecting) return;
        var img = entry.target;
        img.src = img.getAttribute("data-src");
        img.removeAttribute("data-src");
        imageObserver.unobserve(img);
      });
    }, { rootMargin: "120px" });
    lazyImages.forEach(function(img) { imageObserver.observe(img); });
  } else {
    lazyImages.forEach(function(img) {
      img.src = img.getAttribute("data-src");
      img.removeAttribute("data-src");
    });
  }

  // ===== Fade-in on scroll, applied once per element =====
  var fadeEls = document.querySelectorAll(".fade-in");
  if ("IntersectionObserver" in window) {
    var fadeObserver = new IntersectionObserver(function(entries) {
      entries.forEach(function(entry) {
        if (!entry.isIntersecting) return;
        entry.target.classList.add("visible");
        fadeObserver.unobserve(entry.target);
      });
    }, { threshold: 0.15 });
    fadeEls.forEach(function(el) { fadeObserver.observe(el); });
  } else {
    fadeEls.forEach(function(el) { el.classList.add("visible"); });
  }

  // ===== WhatsApp checkout =====
  document.addEventListener("click", function(e) {
    var btn = e.target.closest(".buy-btn");
    if (!btn || btn.disabled) return;
    var phone = btn.getAttribute("data-phone");
    var message = btn.getAttribute("data-message");
    if (!phone) return;
    window.open("https://wa.me/" + phone + "?text=" + encodeURIComponent(message || ""), "_blank");
  });

  // ===== Scroll to top =====
  var scrollTop = document.getElementById("scroll-top");
  if (scrollTop) {
    window.addEventListener("scroll", function() {
      scrollTop.classList.toggle("visible", window.scrollY > 400);
    }, { passive: true });
    scrollTop.addEventListener("click", function() {
      window.scrollTo({ top: 0, behavior: "smooth" });
    });
  }
})();
`
